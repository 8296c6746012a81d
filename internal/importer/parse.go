// Package importer turns delimited text into entity creates, one row at a time.
package importer

import (
	"errors"
	"strings"

	"mainthub/internal/models"
)

var ErrEmptyHeader = errors.New("import header has no column names")

// Row is one data line of the payload. Line is 1-based and counts the header.
type Row struct {
	Line   int
	Record models.Record
}

// ParseRecords splits text on newlines and commas. The first line is the
// header. There is no quoting, so a comma inside a cell always starts a new
// cell. Whitespace-only data lines are skipped.
func ParseRecords(text string) ([]string, []Row, error) {
	lines := strings.Split(text, "\n")

	header := splitCells(lines[0])
	named := 0
	for _, h := range header {
		if h != "" {
			named++
		}
	}
	if named == 0 {
		return nil, nil, ErrEmptyHeader
	}

	var rows []Row
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		cells := splitCells(lines[i])
		record := make(models.Record, named)
		for col, key := range header {
			if key == "" {
				continue
			}
			var value *string
			if col < len(cells) && cells[col] != "" {
				v := cells[col]
				value = &v
			}
			record[key] = value
		}
		rows = append(rows, Row{Line: i + 1, Record: record})
	}
	return header, rows, nil
}

func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
