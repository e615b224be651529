package parsers

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/famplex/famplex/internal/domain/entities"
)

// WriteGroundings writes 4-column grounding rows with CRLF line endings.
func WriteGroundings(w io.Writer, groundings []entities.Grounding) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	for _, g := range groundings {
		if err := writer.Write([]string{g.Text, string(g.Namespace), g.ID, g.Name}); err != nil {
			return fmt.Errorf("writing grounding %s: %w", g, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing groundings: %w", err)
	}
	return nil
}
