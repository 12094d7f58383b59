package domain

import (
	"sort"
	"strings"
)

// ValidationErrors maps a field name to the message shown next to it.
// An empty map means every field is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return strings.Join(parts, "; ")
}

// Has reports whether field carries an error.
func (v ValidationErrors) Has(field string) bool {
	return v[field] != ""
}
