// Package hgnc resolves HGNC gene identifiers to approved symbols.
package hgnc

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/famplex/famplex/internal/domain/ports"
)

// idPrefix is stripped from identifiers before lookup.
const idPrefix = "HGNC:"

// Header names accepted for the id and symbol columns of an HGNC export.
var (
	idColumns     = []string{"hgnc_id", "HGNC ID"}
	symbolColumns = []string{"symbol", "Approved symbol"}
)

// FileResolver answers lookups from a tab-separated HGNC export held in memory.
type FileResolver struct {
	symbols map[string]string
	ids     map[string]string
}

// LoadFile reads an HGNC export from disk.
func LoadFile(path string) (*FileResolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening HGNC file: %w", err)
	}
	defer f.Close()

	resolver, err := NewFileResolver(f)
	if err != nil {
		return nil, fmt.Errorf("reading HGNC file %s: %w", path, err)
	}
	return resolver, nil
}

// NewFileResolver reads an HGNC export. The first row must be a header.
func NewFileResolver(r io.Reader) (*FileResolver, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idCol, symbolCol := columnIndex(header, idColumns), columnIndex(header, symbolColumns)
	if idCol < 0 || symbolCol < 0 {
		return nil, errors.New("header has no HGNC id or symbol column")
	}

	res := &FileResolver{
		symbols: make(map[string]string),
		ids:     make(map[string]string),
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if idCol >= len(record) || symbolCol >= len(record) {
			continue
		}
		id := strings.TrimPrefix(record[idCol], idPrefix)
		symbol := record[symbolCol]
		if id == "" || symbol == "" {
			continue
		}
		res.symbols[id] = symbol
		res.ids[symbol] = id
	}
	return res, nil
}

func columnIndex(header []string, names []string) int {
	for i, col := range header {
		for _, name := range names {
			if col == name {
				return i
			}
		}
	}
	return -1
}

// Symbol returns the approved symbol for an HGNC id.
func (r *FileResolver) Symbol(_ context.Context, hgncID string) (string, error) {
	symbol, ok := r.symbols[strings.TrimPrefix(hgncID, idPrefix)]
	if !ok {
		return "", ports.ErrNotFound
	}
	return symbol, nil
}

// ID returns the HGNC id for an approved symbol.
func (r *FileResolver) ID(_ context.Context, symbol string) (string, error) {
	id, ok := r.ids[symbol]
	if !ok {
		return "", ports.ErrNotFound
	}
	return id, nil
}

// Len returns the number of genes loaded.
func (r *FileResolver) Len() int {
	return len(r.symbols)
}
