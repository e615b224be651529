package parsers

import (
	"fmt"
	"io"

	"github.com/famplex/famplex/internal/domain/entities"
)

// LegacyGrounding is one row of the old interleaved grounding map:
// text followed by namespace/id pairs.
type LegacyGrounding struct {
	Text string
	Refs []entities.Ref
}

// ReadLegacyGroundings reads variable-width legacy grounding rows.
// Pairs with an empty namespace or id are skipped, as is a trailing unpaired column.
func ReadLegacyGroundings(r io.Reader) ([]LegacyGrounding, error) {
	reader := newReader(r)

	var rows []LegacyGrounding
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) == 0 {
			continue
		}

		row := LegacyGrounding{Text: record[0]}
		rest := record[1:]
		for i := 0; i+1 < len(rest); i += 2 {
			ns, id := rest[i], rest[i+1]
			if ns == "" || id == "" {
				continue
			}
			row.Refs = append(row.Refs, entities.Ref{Namespace: entities.Namespace(ns), ID: id})
		}
		rows = append(rows, row)
	}

	return rows, nil
}
