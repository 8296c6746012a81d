// Package listview keeps an immutable snapshot of loaded entities and hands out
// sorted copies of it.
package listview

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

var ErrUnknownField = errors.New("unknown sort field")

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc", "desc" or empty (asc).
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", fmt.Errorf("invalid sort direction %q", s)
}

// State is the last applied sort. Field is empty until the first sort.
type State struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

type keyType int

const (
	textKey keyType = iota
	timeKey
	numberKey
)

type accessor struct {
	index []int
	key   keyType
}

var timeType = reflect.TypeOf(time.Time{})

// View is not safe for concurrent use; build one per caller.
type View[T any] struct {
	snapshot []*T
	fields   map[string]accessor
	state    State
}

func New[T any](items []*T) *View[T] {
	return &View[T]{
		snapshot: slices.Clone(items),
		fields:   accessors(reflect.TypeOf((*T)(nil)).Elem()),
	}
}

// Items returns the snapshot in load order.
func (v *View[T]) Items() []*T {
	return slices.Clone(v.snapshot)
}

func (v *View[T]) State() State {
	return v.state
}

// SortBy returns a new stably sorted slice; entries that compare equal keep
// their snapshot order in both directions.
func (v *View[T]) SortBy(field string, dir Direction) ([]*T, error) {
	acc, ok := v.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if dir != Asc && dir != Desc {
		return nil, fmt.Errorf("invalid sort direction %q", dir)
	}

	out := slices.Clone(v.snapshot)
	slices.SortStableFunc(out, func(a, b *T) int {
		c := compare(acc, a, b)
		if dir == Desc {
			return -c
		}
		return c
	})
	v.state = State{Field: field, Direction: dir}
	return out, nil
}

// ToggleSort flips to desc when field is already sorted asc, otherwise sorts asc.
func (v *View[T]) ToggleSort(field string) ([]*T, error) {
	dir := Asc
	if v.state.Field == field && v.state.Direction == Asc {
		dir = Desc
	}
	return v.SortBy(field, dir)
}

func compare[T any](acc accessor, a, b *T) int {
	va := fieldValue(acc, a)
	vb := fieldValue(acc, b)
	switch acc.key {
	case timeKey:
		return timeOf(va).Compare(timeOf(vb))
	case numberKey:
		return cmp.Compare(numberOf(va), numberOf(vb))
	}
	return strings.Compare(textOf(va), textOf(vb))
}

// fieldValue dereferences pointers; the zero reflect.Value stands for nil.
func fieldValue[T any](acc accessor, item *T) reflect.Value {
	if item == nil {
		return reflect.Value{}
	}
	rv := reflect.ValueOf(item).Elem().FieldByIndex(acc.index)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func textOf(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return v.String()
}

func timeOf(v reflect.Value) time.Time {
	if !v.IsValid() {
		return time.Time{}
	}
	return v.Interface().(time.Time)
}

func numberOf(v reflect.Value) float64 {
	if !v.IsValid() {
		return 0
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	}
	return v.Float()
}

// accessors maps JSON field names to sortable struct fields, walking embedded
// structs. Nested entities (relations) are not sortable.
func accessors(t reflect.Type) map[string]accessor {
	out := make(map[string]accessor)
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			index := append(slices.Clone(prefix), i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				walk(f.Type, index)
				continue
			}
			if !f.IsExported() {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				name = f.Name
			}
			key, ok := keyFor(f.Type)
			if !ok {
				continue
			}
			out[name] = accessor{index: index, key: key}
		}
	}
	walk(t, nil)
	return out
}

func keyFor(t reflect.Type) (keyType, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return timeKey, true
	}
	if t.Implements(reflect.TypeOf((*fmt.Stringer)(nil)).Elem()) {
		return textKey, true
	}
	switch t.Kind() {
	case reflect.String:
		return textKey, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return numberKey, true
	}
	return 0, false
}
