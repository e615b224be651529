package parsers

import (
	"io"

	"github.com/famplex/famplex/internal/domain/entities"
)

// load reads a fixed-width table and converts its usable rows.
func load[T any](r io.Reader, file string, width int, convert func([]string) T) ([]T, []error, error) {
	table, err := ReadTable(r, file, width)
	if err != nil {
		return nil, nil, err
	}
	out := make([]T, 0, len(table.Rows))
	for _, row := range table.Rows {
		out = append(out, convert(row))
	}
	return out, table.Errors, nil
}

// LoadEntities reads entities.csv: id, name, description, references.
func LoadEntities(r io.Reader, file string) ([]entities.Entity, []error, error) {
	return load(r, file, EntityColumns, func(row []string) entities.Entity {
		return entities.Entity{ID: row[0], Name: row[1], Description: row[2], References: row[3]}
	})
}

// LoadRelationships reads relations.csv:
// subject namespace, id, name, predicate, object namespace, id, name.
func LoadRelationships(r io.Reader, file string) ([]entities.Relationship, []error, error) {
	return load(r, file, RelationshipColumns, func(row []string) entities.Relationship {
		return entities.Relationship{
			Subject:   entities.Term{Namespace: entities.Namespace(row[0]), ID: row[1], Name: row[2]},
			Predicate: entities.Predicate(row[3]),
			Object:    entities.Term{Namespace: entities.Namespace(row[4]), ID: row[5], Name: row[6]},
		}
	})
}

// LoadEquivalences reads equivalences.csv: namespace, id, FamPlex id, FamPlex name.
func LoadEquivalences(r io.Reader, file string) ([]entities.Equivalence, []error, error) {
	return load(r, file, EquivalenceColumns, func(row []string) entities.Equivalence {
		return entities.Equivalence{Namespace: entities.Namespace(row[0]), ID: row[1], FplxID: row[2], FplxName: row[3]}
	})
}

// LoadGroundings reads grounding_map.csv: text, namespace, id, name.
func LoadGroundings(r io.Reader, file string) ([]entities.Grounding, []error, error) {
	return load(r, file, GroundingColumns, func(row []string) entities.Grounding {
		return entities.Grounding{Text: row[0], Namespace: entities.Namespace(row[1]), ID: row[2], Name: row[3]}
	})
}
