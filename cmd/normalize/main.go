// normalize takes RNA and DNA barcode counts from an MPRA experiment and
// writes a normalized log2 ratio for each unique reporter sequence.
//
// Usage:
//
//	normalize [--pcr PCR] [--pcd PCD] [--cutoff CUTOFF] [--hist] rnalist dnalist outfile
//
// rnalist and dnalist are comma-separated lists of count-table files, paired
// positionally. Each pair writes its own output file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/mpranorm/normalize"
)

func main() {
	var pcr, pcd string
	var cutoff int
	var hist bool

	// --pcr and --pcd are parsed by hand so that a non-integer value warns
	// and falls back instead of aborting the run.
	flag.StringVar(&pcr, "pcr", "1", "Pseudocount added to every RNA cell for smoothing (non-negative integer).")
	flag.StringVar(&pcd, "pcd", "1", "Pseudocount added to every DNA cell for smoothing (non-negative integer).")
	flag.IntVar(&cutoff, "cutoff", 20, "Minimum original DNA count for a cell to be retained.")
	flag.BoolVar(&hist, "hist", false, "Print a histogram of each pair's ratios to stdout.")
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Usage: normalize [options] <rnalist> <dnalist> <outfile>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	rnalist := strings.Split(flag.Arg(0), ",")
	dnalist := strings.Split(flag.Arg(1), ",")
	outfile := flag.Arg(2)

	if cutoff < 0 {
		log.Fatalln("--cutoff must be non-negative, got", cutoff)
	}

	cfg := normalize.DefaultConfig()
	cfg.Cutoff = int64(cutoff)
	cfg.Histogram = hist

	pseudoRNA, errRNA := strconv.Atoi(pcr)
	pseudoDNA, errDNA := strconv.Atoi(pcd)
	if errRNA != nil || errDNA != nil || pseudoRNA < 0 || pseudoDNA < 0 {
		log.Println("WARNING: pseudocounts are not applied since input of pcr and/or pcd is not a non-negative integer")
		cfg.ApplyPseudocounts = false
	} else {
		cfg.PseudoRNA = int64(pseudoRNA)
		cfg.PseudoDNA = int64(pseudoDNA)
	}

	pairs, err := normalize.PlanPairs(rnalist, dnalist, outfile)
	if err != nil {
		log.Fatalln(err)
	}

	if err := normalize.Run(pairs, cfg); err != nil {
		log.Fatalln(err)
	}
}
