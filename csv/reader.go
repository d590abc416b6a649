package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DefiantLabs/explorer-tax-cli/csv/adapters/etherscan"
	"github.com/DefiantLabs/explorer-tax-cli/ledger"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadOptions are the layouts an export may match and the tokens to skip.
type LoadOptions struct {
	Layouts []etherscan.Layout
	Banned  map[string]bool
}

// LoadFile reads one explorer export for the given source category.
func LoadFile(path, sourceID string, opts LoadOptions) (*ledger.DataFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadReader(f, filepath.Base(path), sourceID, opts)
}

// LoadFiles reads every export in paths, keyed by source category. Empty
// paths are skipped.
func LoadFiles(paths map[string]string, opts LoadOptions) (map[string]*ledger.DataFile, error) {
	files := make(map[string]*ledger.DataFile)
	for sourceID, path := range paths {
		if path == "" {
			continue
		}
		df, err := LoadFile(path, sourceID, opts)
		if err != nil {
			return nil, err
		}
		files[sourceID] = df
	}
	return files, nil
}

// LoadReader reads an explorer export. Lines before the first header that
// matches a layout for sourceID are ignored. Rows whose handler fails keep
// the error on Row.Failure and produce no record.
func LoadReader(r io.Reader, name, sourceID string, opts LoadOptions) (*ledger.DataFile, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	headerIdx := -1
	var layout etherscan.Layout
	for i, line := range lines {
		if l, ok := etherscan.Detect(opts.Layouts, sourceID, line); ok {
			headerIdx, layout = i, l
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("%s: no known %s export header found", name, sourceID)
	}

	header := lines[headerIdx]
	df := &ledger.DataFile{
		SourceID:     sourceID,
		Name:         name,
		Layout:       layout.Name,
		Header:       header,
		HeaderRowNum: headerIdx + 1,
	}

	handlerOpts := etherscan.Options{Asset: layout.Asset, Filename: name, Banned: opts.Banned}
	for i, line := range lines[headerIdx+1:] {
		if blank(line) {
			continue
		}

		row := &ledger.Row{
			SourceID: sourceID,
			Fields:   fields(header, line),
			LineNum:  headerIdx + i + 2,
		}
		row.Record, row.Failure = layout.Handler(row.Fields, handlerOpts)
		if row.Failure != nil {
			row.Record = nil
		}
		df.Rows = append(df.Rows, row)
	}

	return df, nil
}

func fields(header, line []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == "" || i >= len(line) {
			continue
		}
		m[col] = strings.TrimSpace(line[i])
	}
	return m
}

func blank(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
