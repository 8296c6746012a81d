package repositories

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"mainthub/internal/models"

	"github.com/google/uuid"
)

type ColumnType int

const (
	TextColumn ColumnType = iota
	IntColumn
	NumericColumn
	DateColumn
	UUIDColumn
)

// Column is a writable column of an entity table.
type Column struct {
	Name string
	Type ColumnType
}

// Relation is an eagerly loaded foreign row, selected as a JSON object and
// attached to the owning entity after the scan.
type Relation[T any] struct {
	Name       string
	Table      string
	ForeignKey string
	attach     func(entity *T, raw []byte) error
}

type identified interface {
	EntityID() uuid.UUID
}

// Embed declares a relation from T.fk to table, materialized into R.
func Embed[T any, R any](name, table, fk string, key func(*T) *uuid.UUID, set func(*T, *R)) Relation[T] {
	return Relation[T]{
		Name:       name,
		Table:      table,
		ForeignKey: fk,
		attach: func(entity *T, raw []byte) error {
			if len(raw) == 0 {
				return nil
			}
			related := new(R)
			if err := json.Unmarshal(raw, related); err != nil {
				return fmt.Errorf("decode %s: %w", name, err)
			}
			if id, ok := any(related).(identified); ok {
				if fk := key(entity); fk != nil && *fk != id.EntityID() {
					return fmt.Errorf("%s id %s does not match %s %s", name, id.EntityID(), table, *fk)
				}
			}
			set(entity, related)
			return nil
		},
	}
}

// Kind describes how one entity type maps onto its table.
type Kind[T any] struct {
	Name          string
	Table         string
	Columns       []Column
	Required      []string
	SearchColumns []string
	OrderBy       string
	Descending    bool
	// SearchLimit caps Search results; zero means no cap.
	SearchLimit int
	Relations   []Relation[T]
	// Targets returns scan destinations for id, created_at, updated_at
	// followed by Columns in declaration order.
	Targets func(*T) []any
}

func (k *Kind[T]) column(name string) (Column, bool) {
	for _, c := range k.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// HasColumn reports whether name is a writable column of the kind.
func (k *Kind[T]) HasColumn(name string) bool {
	_, ok := k.column(name)
	return ok
}

// ValidateRequired checks that every required field is present and not blank.
func (k *Kind[T]) ValidateRequired(fields models.Fields) error {
	for _, name := range k.Required {
		if blank(fields[name]) {
			return &ValidationError{Kind: k.Name, Field: name, Message: "is required"}
		}
	}
	return nil
}

// normalize checks every key against the column list and converts values
// to the Go type the driver expects for that column.
func (k *Kind[T]) normalize(fields models.Fields) (models.Fields, error) {
	out := make(models.Fields, len(fields))
	for name, value := range fields {
		col, ok := k.column(name)
		if !ok {
			return nil, &ValidationError{Kind: k.Name, Field: name, Message: "is not a known field"}
		}
		converted, err := coerce(col.Type, value)
		if err != nil {
			return nil, &ValidationError{Kind: k.Name, Field: name, Message: err.Error()}
		}
		out[name] = converted
	}
	return out, nil
}

func blank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case *string:
		return val == nil || strings.TrimSpace(*val) == ""
	}
	return false
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02", "01/02/2006"}

func coerce(t ColumnType, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(*string); ok {
		if s == nil {
			return nil, nil
		}
		v = *s
	}
	if s, ok := v.(string); ok && t != TextColumn && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	switch t {
	case TextColumn:
		switch val := v.(type) {
		case string:
			return val, nil
		case fmt.Stringer:
			return val.String(), nil
		}
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String(), nil
		}
		return nil, fmt.Errorf("must be text")
	case IntColumn:
		switch val := v.(type) {
		case int:
			return int64(val), nil
		case int32:
			return int64(val), nil
		case int64:
			return val, nil
		case float64:
			if val != math.Trunc(val) {
				return nil, fmt.Errorf("must be a whole number")
			}
			return int64(val), nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("must be a whole number")
			}
			return n, nil
		}
		return nil, fmt.Errorf("must be a whole number")
	case NumericColumn:
		switch val := v.(type) {
		case int:
			return float64(val), nil
		case int64:
			return float64(val), nil
		case float64:
			return val, nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return nil, fmt.Errorf("must be a number")
			}
			return f, nil
		}
		return nil, fmt.Errorf("must be a number")
	case DateColumn:
		switch val := v.(type) {
		case time.Time:
			return val, nil
		case *time.Time:
			if val == nil {
				return nil, nil
			}
			return *val, nil
		case string:
			for _, layout := range dateLayouts {
				if ts, err := time.Parse(layout, strings.TrimSpace(val)); err == nil {
					return ts, nil
				}
			}
			return nil, fmt.Errorf("must be a date")
		}
		return nil, fmt.Errorf("must be a date")
	case UUIDColumn:
		switch val := v.(type) {
		case uuid.UUID:
			return val, nil
		case *uuid.UUID:
			if val == nil {
				return nil, nil
			}
			return *val, nil
		case string:
			id, err := uuid.Parse(strings.TrimSpace(val))
			if err != nil {
				return nil, fmt.Errorf("must be a uuid")
			}
			return id, nil
		}
		return nil, fmt.Errorf("must be a uuid")
	}
	return v, nil
}
