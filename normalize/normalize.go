// Package normalize computes per-sequence normalized log2 RNA/DNA ratios
// from paired MPRA count tables.
package normalize

import (
	"math"
	"strconv"

	"github.com/carbocation/mpranorm/counts"
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// Config carries the normalization parameters. The zero value is not useful;
// start from DefaultConfig.
type Config struct {
	// PseudoRNA and PseudoDNA are added uniformly to every RNA and DNA cell
	// before normalization, to avoid taking log2 of zero.
	PseudoRNA int64
	PseudoDNA int64

	// Cutoff is the minimum original (pre-pseudocount) DNA count for a cell
	// to be retained. The boundary is inclusive: a count equal to Cutoff
	// stays in.
	Cutoff int64

	// ApplyPseudocounts is cleared when the caller received pseudocount
	// values it could not parse. The run then proceeds on the raw counts,
	// matching the legacy warn-and-continue behavior.
	ApplyPseudocounts bool

	// Histogram requests a terminal histogram of the per-sequence ratios
	// after each pair.
	Histogram bool
}

func DefaultConfig() Config {
	return Config{
		PseudoRNA:         1,
		PseudoDNA:         1,
		Cutoff:            20,
		ApplyPseudocounts: true,
	}
}

// Ratio is a nullable per-sequence log2 ratio. Valid is false when every
// cell of the row was masked or numerically undefined.
type Ratio struct {
	Value float64
	Valid bool
}

// MarshalCSV renders a missing ratio as an empty field.
func (r Ratio) MarshalCSV() (string, error) {
	if !r.Valid {
		return "", nil
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64), nil
}

// UnmarshalCSV parses an empty field as a missing ratio.
func (r *Ratio) UnmarshalCSV(field string) error {
	if field == "" {
		*r = Ratio{}
		return nil
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return err
	}
	*r = Ratio{Value: v, Valid: true}
	return nil
}

// Row is one output record: the sequence identifier, the median of its valid
// per-sample ratios, and how many samples contributed.
type Row struct {
	Sequence string `csv:"Sequence"`
	Ratio    Ratio  `csv:"Ratio"`
	Barcodes int    `csv:"#barcodes"`
}

// Result is the summarized output for one RNA/DNA pair.
type Result struct {
	// KeyHeader is carried over from the input tables so the output names
	// its key column the same way.
	KeyHeader string

	Rows []Row
}

// ValidMedians returns the medians of all rows that had at least one valid
// cell.
func (r *Result) ValidMedians() []float64 {
	out := make([]float64, 0, len(r.Rows))
	for _, row := range r.Rows {
		if row.Ratio.Valid {
			out = append(out, row.Ratio.Value)
		}
	}
	return out
}

// NormalizePair computes the normalized ratio summary for one RNA/DNA table
// pair. The input tables are not modified. Steps: validate alignment,
// optionally shift by pseudocounts, divide each cell by its column total,
// take elementwise log2(RNA) - log2(DNA), mask cells whose original DNA
// count is under the cutoff, then reduce each row to the median of its valid
// cells plus the count of contributing samples.
func NormalizePair(rna, dna *counts.Table, cfg Config) (*Result, error) {
	if err := counts.AlignCheck(rna, dna); err != nil {
		return nil, err
	}

	// The cutoff is applied against the DNA counts as loaded, before any
	// pseudocount shift.
	originalDNA := dna

	rna = rna.Clone()
	dna = dna.Clone()

	if cfg.ApplyPseudocounts {
		rna.AddPseudocount(cfg.PseudoRNA)
		dna.AddPseudocount(cfg.PseudoDNA)
	}

	rnaSums := rna.ColumnSums()
	dnaSums := dna.ColumnSums()

	result := &Result{
		KeyHeader: rna.KeyHeader,
		Rows:      make([]Row, 0, len(rna.Keys)),
	}

	for i, key := range rna.Keys {
		valid := make([]float64, 0, len(rna.Samples))

		for j := range rna.Samples {
			if originalDNA.Counts[i][j] < cfg.Cutoff {
				continue
			}

			// A zero column total or a zero cell would push log2 out of its
			// domain; such cells are missing, not errors.
			rnaCell, dnaCell := rna.Counts[i][j], dna.Counts[i][j]
			if rnaCell <= 0 || dnaCell <= 0 || rnaSums[j] <= 0 || dnaSums[j] <= 0 {
				continue
			}

			normRNA := math.Log2(float64(rnaCell) / float64(rnaSums[j]))
			normDNA := math.Log2(float64(dnaCell) / float64(dnaSums[j]))
			valid = append(valid, normRNA-normDNA)
		}

		row := Row{Sequence: key, Barcodes: len(valid)}
		if len(valid) > 0 {
			med, err := stats.Median(valid)
			if err != nil {
				return nil, pfx.Err(err)
			}
			row.Ratio = Ratio{Value: med, Valid: true}
		}

		result.Rows = append(result.Rows, row)
	}

	return result, nil
}
