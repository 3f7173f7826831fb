// Package counts models MPRA barcode count tables: one row per unique
// reporter sequence, one column per sample, non-negative integer counts.
package counts

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// Table is a fully-loaded count table. Counts[i][j] is the count for row
// Keys[i] under column Samples[j].
type Table struct {
	// Name identifies the source of the table (usually a file path) and is
	// used in error messages.
	Name string

	// KeyHeader is the header cell above the row-key column.
	KeyHeader string

	Samples []string
	Keys    []string
	Counts  [][]int64
}

// Clone returns a deep copy of the table. The normalizer keeps an unmodified
// copy of the DNA table so that cutoff filtering sees pre-pseudocount counts.
func (t *Table) Clone() *Table {
	out := &Table{
		Name:      t.Name,
		KeyHeader: t.KeyHeader,
		Samples:   append([]string{}, t.Samples...),
		Keys:      append([]string{}, t.Keys...),
		Counts:    make([][]int64, len(t.Counts)),
	}
	for i, row := range t.Counts {
		out.Counts[i] = append([]int64{}, row...)
	}
	return out
}

// AddPseudocount shifts every cell by p.
func (t *Table) AddPseudocount(p int64) {
	for _, row := range t.Counts {
		for j := range row {
			row[j] += p
		}
	}
}

// ColumnSums returns the total count per sample column.
func (t *Table) ColumnSums() []int64 {
	sums := make([]int64, len(t.Samples))
	for _, row := range t.Counts {
		for j, v := range row {
			sums[j] += v
		}
	}
	return sums
}

// AlignCheck confirms that an RNA/DNA table pair can be combined row-wise:
// the same row keys in the same order, and the same number of sample
// columns. The ratio arithmetic is positional, so any mismatch here would
// silently pair unrelated sequences.
func AlignCheck(rna, dna *Table) error {
	if len(rna.Samples) != len(dna.Samples) {
		return pfx.Err(fmt.Errorf("%s has %d sample columns but %s has %d", rna.Name, len(rna.Samples), dna.Name, len(dna.Samples)))
	}

	if len(rna.Keys) != len(dna.Keys) {
		return pfx.Err(fmt.Errorf("%s has %d rows but %s has %d", rna.Name, len(rna.Keys), dna.Name, len(dna.Keys)))
	}

	for i, key := range rna.Keys {
		if key != dna.Keys[i] {
			return pfx.Err(fmt.Errorf("row %d: %s has sequence %q but %s has %q", i+1, rna.Name, key, dna.Name, dna.Keys[i]))
		}
	}

	return nil
}
