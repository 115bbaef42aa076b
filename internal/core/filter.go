// AngelaMos | 2026
// filter.go

package core

import (
	"fmt"
	"strings"
)

// Filter composes a WHERE clause from fixed base predicates and optional
// caller-supplied values. Column names must be constants from code; values
// only ever travel as positional arguments.
type Filter struct {
	conditions []string
	args       []any
}

func NewFilter(base ...string) *Filter {
	return &Filter{conditions: append([]string(nil), base...)}
}

// Arg registers a value and returns its placeholder.
func (f *Filter) Arg(value any) string {
	f.args = append(f.args, value)
	return fmt.Sprintf("$%d", len(f.args))
}

// Equal adds "column = value" unless value is empty.
func (f *Filter) Equal(column, value string) *Filter {
	if value == "" {
		return f
	}
	f.conditions = append(f.conditions, column+" = "+f.Arg(value))
	return f
}

// Contains adds a case-insensitive substring match of value against any of
// the columns, unless value is empty.
func (f *Filter) Contains(value string, columns ...string) *Filter {
	if value == "" || len(columns) == 0 {
		return f
	}

	ph := f.Arg("%" + EscapeLike(value) + "%")

	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" ILIKE "+ph)
	}

	if len(parts) == 1 {
		f.conditions = append(f.conditions, parts[0])
	} else {
		f.conditions = append(f.conditions, "("+strings.Join(parts, " OR ")+")")
	}
	return f
}

func (f *Filter) Where() string {
	if len(f.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conditions, " AND ")
}

func (f *Filter) Args() []any {
	return f.args
}

// Build renders the final statement.
func (f *Filter) Build(selectFrom, orderBy string) (string, []any) {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(selectFrom))

	if where := f.Where(); where != "" {
		b.WriteString(" ")
		b.WriteString(where)
	}

	if orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}

	return b.String(), f.args
}

func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
