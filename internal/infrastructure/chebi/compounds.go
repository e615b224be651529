// Package chebi indexes the ChEBI compounds flat file.
package chebi

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	accessionColumn = 2
	accessionPrefix = "CHEBI:"
)

// Index is the set of ChEBI accessions found in a compounds dump.
type Index struct {
	ids map[string]struct{}
}

// LoadFile reads a compounds.tsv dump from disk.
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ChEBI compounds file: %w", err)
	}
	defer f.Close()

	idx, err := NewIndex(f)
	if err != nil {
		return nil, fmt.Errorf("reading ChEBI compounds file %s: %w", path, err)
	}
	return idx, nil
}

// NewIndex collects the third tab-separated column of every line.
// Lines with fewer columns are ignored.
func NewIndex(r io.Reader) (*Index, error) {
	idx := &Index{ids: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), "\t", accessionColumn+2)
		if len(fields) <= accessionColumn {
			continue
		}
		id := strings.TrimSpace(fields[accessionColumn])
		if id == "" {
			continue
		}
		idx.ids[normalize(id)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Contains reports whether the accession is in the dump. The CHEBI: prefix is optional.
func (i *Index) Contains(chebiID string) bool {
	_, ok := i.ids[normalize(chebiID)]
	return ok
}

// Len returns the number of accessions.
func (i *Index) Len() int {
	return len(i.ids)
}

func normalize(id string) string {
	if strings.HasPrefix(id, accessionPrefix) {
		return id
	}
	return accessionPrefix + id
}
