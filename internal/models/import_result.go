package models

// ImportResult is the aggregate outcome of a bulk import. Individual row
// failures are only counted here.
type ImportResult struct {
	Success int `json:"success"`
	Errors  int `json:"errors"`
}

// Total is the number of rows that were attempted.
func (r ImportResult) Total() int {
	return r.Success + r.Errors
}
