package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mainthub/internal/logging"
	"mainthub/internal/models"
	"mainthub/internal/repositories"
)

// RowError describes why one data line was not created.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Target is the slice of a repository the pipeline writes through.
type Target[T any] interface {
	Create(ctx context.Context, fields models.Fields) (*T, error)
	Kind() *repositories.Kind[T]
}

type Pipeline[T any] struct {
	target Target[T]
}

func NewPipeline[T any](target Target[T]) *Pipeline[T] {
	return &Pipeline[T]{target: target}
}

// Import parses the payload and creates each valid row in order. Row failures
// are logged and counted; the returned error is reserved for an unreadable
// payload, an empty header or a cancelled ctx. Rows created before a
// cancellation stay created.
func (p *Pipeline[T]) Import(ctx context.Context, r io.Reader) (*models.ImportResult, error) {
	kind := p.target.Kind()
	logger := logging.WithFields(ctx, "kind", kind.Name)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s import: %w", kind.Name, err)
	}

	header, rows, err := ParseRecords(string(data))
	if err != nil {
		return nil, err
	}

	var unknown []string
	for _, h := range header {
		if h != "" && !kind.HasColumn(h) {
			unknown = append(unknown, h)
		}
	}
	if len(unknown) > 0 {
		logger.Warn("ignoring unknown import columns", "columns", strings.Join(unknown, ","))
	}

	result := &models.ImportResult{}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			logger.Warn("import cancelled", "success", result.Success, "errors", result.Errors)
			return result, err
		}

		if err := p.importRow(ctx, kind, row); err != nil {
			result.Errors++
			logger.Warn("import row failed", "row", err.Row, "error", err.Err)
			continue
		}
		result.Success++
	}

	logger.Info("import finished", "success", result.Success, "errors", result.Errors)
	return result, nil
}

func (p *Pipeline[T]) importRow(ctx context.Context, kind *repositories.Kind[T], row Row) *RowError {
	fields := make(models.Fields, len(row.Record))
	for key, value := range row.Record {
		// empty cells are left to column defaults
		if value == nil || !kind.HasColumn(key) {
			continue
		}
		fields[key] = *value
	}

	if err := kind.ValidateRequired(fields); err != nil {
		return &RowError{Row: row.Line, Err: err}
	}
	if _, err := p.target.Create(ctx, fields); err != nil {
		return &RowError{Row: row.Line, Err: err}
	}
	return nil
}
