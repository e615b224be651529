// Package entities contains core domain data structures.
package entities

import "strings"

// Entity is a FamPlex family or complex declared in the entities table.
type Entity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	References  string `json:"references"`
}

func (e Entity) String() string {
	return formatRecord(e.ID, e.Name, e.Description, e.References)
}

// formatRecord renders a row as a parenthesised field list, e.g. (a, b, c).
func formatRecord(fields ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f)
	}
	b.WriteByte(')')
	return b.String()
}
