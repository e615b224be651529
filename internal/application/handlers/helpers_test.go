package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famplex/famplex/internal/infrastructure/config"
)

// writeTables writes the four resource tables into a temp dir.
func writeTables(t *testing.T, entities, relations, equivalences, groundingMap string) string {
	t.Helper()
	dir := t.TempDir()
	paths := config.Default().Resources
	for name, content := range map[string]string{
		paths.Entities:     entities,
		paths.Relations:    relations,
		paths.Equivalences: equivalences,
		paths.GroundingMap: groundingMap,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

const (
	cleanEntities     = "ERK,ERK,,\r\nMAPK,MAPK,,\r\n"
	cleanRelations    = "HGNC,6871,MAPK1,isa,FPLX,ERK,ERK\r\nFPLX,ERK,ERK,isa,FPLX,MAPK,MAPK\r\n"
	cleanEquivalences = "MESH,D048049,ERK,ERK\r\n"
	cleanGroundings   = "ERK,FPLX,ERK,ERK\r\n"
)
