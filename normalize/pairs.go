package normalize

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// Pair names one RNA/DNA file pair and the output path its summary is
// written to.
type Pair struct {
	RNA string
	DNA string
	Out string
}

// PlanPairs pairs the RNA and DNA file lists positionally and assigns each
// pair its own output path. A single pair writes to outfile as given; with
// more pairs, each output path gains a .pairN suffix before the extension so
// that no pair overwrites another.
func PlanPairs(rnalist, dnalist []string, outfile string) ([]Pair, error) {
	if len(rnalist) == 0 {
		return nil, pfx.Err(fmt.Errorf("no RNA input files given"))
	}

	if len(rnalist) != len(dnalist) {
		return nil, pfx.Err(fmt.Errorf("got %d RNA files but %d DNA files; the lists are paired positionally and must have equal length", len(rnalist), len(dnalist)))
	}

	pairs := make([]Pair, 0, len(rnalist))
	for i := range rnalist {
		out := outfile
		if len(rnalist) > 1 {
			ext := filepath.Ext(outfile)
			out = fmt.Sprintf("%s.pair%d%s", strings.TrimSuffix(outfile, ext), i+1, ext)
		}

		pairs = append(pairs, Pair{RNA: rnalist[i], DNA: dnalist[i], Out: out})
	}

	return pairs, nil
}
