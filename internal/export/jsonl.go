package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// JSONL file names, one per table.
const (
	PartnersFile     = types.PartnersTable + ".jsonl"
	ProductTypesFile = types.ProductTypesTable + ".jsonl"
	ProductsFile     = types.ProductsTable + ".jsonl"
	SalesFile        = types.SalesTable + ".jsonl"
)

// WriteJSONL writes s into dir, one file per table. Each file is replaced
// atomically.
func WriteJSONL(dir string, s Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := writeTable(filepath.Join(dir, PartnersFile), s.Partners); err != nil {
		return err
	}
	if err := writeTable(filepath.Join(dir, ProductTypesFile), s.ProductTypes); err != nil {
		return err
	}
	if err := writeTable(filepath.Join(dir, ProductsFile), s.Products); err != nil {
		return err
	}
	return writeTable(filepath.Join(dir, SalesFile), s.Sales)
}

// ReadJSONL reads a snapshot written by WriteJSONL. A missing file is an
// empty table. Blank lines are ignored; malformed lines are skipped and
// counted in Snapshot.Skipped.
func ReadJSONL(dir string) (Snapshot, error) {
	var (
		s       Snapshot
		skipped int
		err     error
	)
	if s.Partners, skipped, err = readTable[types.Partner](filepath.Join(dir, PartnersFile)); err != nil {
		return Snapshot{}, err
	}
	s.Skipped += skipped
	if s.ProductTypes, skipped, err = readTable[types.ProductType](filepath.Join(dir, ProductTypesFile)); err != nil {
		return Snapshot{}, err
	}
	s.Skipped += skipped
	if s.Products, skipped, err = readTable[types.Product](filepath.Join(dir, ProductsFile)); err != nil {
		return Snapshot{}, err
	}
	s.Skipped += skipped
	if s.Sales, skipped, err = readTable[types.Sale](filepath.Join(dir, SalesFile)); err != nil {
		return Snapshot{}, err
	}
	s.Skipped += skipped
	return s, nil
}

func writeTable[T any](path string, recs []T) error {
	lines := make([]json.RawMessage, 0, len(recs))
	for _, rec := range recs {
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
		}
		lines = append(lines, b)
	}
	return writeJSONL(path, lines)
}

func readTable[T any](path string) ([]*T, int, error) {
	lines, skipped, err := readJSONL(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	out := make([]*T, 0, len(lines))
	for i, line := range lines {
		rec := new(T)
		if err := json.Unmarshal(line, rec); err != nil {
			return nil, 0, fmt.Errorf("%s record %d: %w", filepath.Base(path), i+1, err)
		}
		out = append(out, rec)
	}
	return out, skipped, nil
}

// readJSONL returns each well-formed line of path and the number of
// non-blank lines that were not valid JSON.
func readJSONL(path string) ([]json.RawMessage, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var (
		records []json.RawMessage
		skipped int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			skipped++
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, skipped, nil
}

// writeJSONL replaces path with records using the temp-file, fsync, rename
// pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(what string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", what, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
