package normalize

import (
	"io"
	"log"
	"math"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/mpranorm/counts"
	"gonum.org/v1/gonum/stat"
)

// Summary returns the mean and standard deviation of the valid per-sequence
// medians, and how many sequences contributed. With fewer than two valid
// medians the standard deviation is reported as 0.
func (r *Result) Summary() (mean, sd float64, n int) {
	medians := r.ValidMedians()
	if len(medians) == 0 {
		return 0, 0, 0
	}

	mean, sd = stat.MeanStdDev(medians, nil)
	if math.IsNaN(sd) {
		sd = 0
	}

	return mean, sd, len(medians)
}

// PrintHistogram prints a terminal histogram of the valid per-sequence
// medians. The bucket count is arbitrary.
func (r *Result) PrintHistogram(w io.Writer) error {
	medians := r.ValidMedians()
	if len(medians) == 0 {
		return nil
	}

	hist := histogram.Hist(25, medians)

	return histogram.Fprint(w, hist, histogram.Linear(5))
}

// Run processes each pair to completion in order: load both tables, compute
// the normalized ratio summary, write it out. The first error aborts the
// run.
func Run(pairs []Pair, cfg Config) error {
	for i, pair := range pairs {
		log.Printf("Pair %d of %d: %s / %s", i+1, len(pairs), pair.RNA, pair.DNA)

		rna, err := counts.LoadFile(pair.RNA)
		if err != nil {
			return err
		}

		dna, err := counts.LoadFile(pair.DNA)
		if err != nil {
			return err
		}

		result, err := NormalizePair(rna, dna, cfg)
		if err != nil {
			return err
		}

		if err := result.WriteFile(pair.Out); err != nil {
			return err
		}

		mean, sd, n := result.Summary()
		log.Printf("Wrote %d sequences to %s (%d with a ratio, mean %.3f, SD %.3f)", len(result.Rows), pair.Out, n, mean, sd)

		if cfg.Histogram {
			if err := result.PrintHistogram(os.Stdout); err != nil {
				return err
			}
		}
	}

	return nil
}
