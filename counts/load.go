package counts

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/carbocation/mpranorm"
	"github.com/carbocation/pfx"
)

// LoadFile reads the count table at path. The file handle is scoped to this
// call.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return Load(f, path)
}

// Load parses a delimited count table from r. The first header cell names
// the row-key column; every remaining column is a sample. The delimiter is
// sniffed, so comma-delimited tables work as well as the conventional
// tab-delimited ones.
func Load(r io.Reader, name string) (*Table, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", name, err))
	}

	cr := csv.NewReader(bytes.NewReader(contents))
	cr.Comma = mpranorm.DetermineDelimiter(bytes.NewReader(contents))

	records, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", name, err))
	}

	if len(records) < 1 {
		return nil, pfx.Err(fmt.Errorf("%s: empty file", name))
	}

	header := records[0]
	if len(header) < 2 {
		return nil, pfx.Err(fmt.Errorf("%s: need a key column and at least one sample column, got %d columns", name, len(header)))
	}

	t := &Table{
		Name:      name,
		KeyHeader: header[0],
		Samples:   header[1:],
		Keys:      make([]string, 0, len(records)-1),
		Counts:    make([][]int64, 0, len(records)-1),
	}

	seen := make(map[string]struct{}, len(records)-1)
	for i, record := range records {
		if i == 0 {
			continue
		}

		key := record[0]
		if _, exists := seen[key]; exists {
			return nil, pfx.Err(fmt.Errorf("%s: row %d: duplicate sequence %q", name, i+1, key))
		}
		seen[key] = struct{}{}

		row := make([]int64, len(record)-1)
		for j, cell := range record[1:] {
			v, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, pfx.Err(fmt.Errorf("%s: row %d, column %s: %q is not an integer count", name, i+1, t.Samples[j], cell))
			}
			if v < 0 {
				return nil, pfx.Err(fmt.Errorf("%s: row %d, column %s: negative count %d", name, i+1, t.Samples[j], v))
			}
			row[j] = v
		}

		t.Keys = append(t.Keys, key)
		t.Counts = append(t.Counts, row)
	}

	if len(t.Keys) == 0 {
		return nil, pfx.Err(fmt.Errorf("%s: no data rows", name))
	}

	return t, nil
}
