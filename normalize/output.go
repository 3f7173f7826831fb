package normalize

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// WriteTSV writes the result as tab-separated values. The header names the
// key column after the input table's own key header, then Ratio and
// #barcodes. Missing ratios are empty fields.
func (r *Result) WriteTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write([]string{r.KeyHeader, "Ratio", "#barcodes"}); err != nil {
		return pfx.Err(err)
	}

	if err := gocsv.MarshalCSVWithoutHeaders(&r.Rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// WriteFile writes the result to path, truncating any existing file. The
// file handle is scoped to this call.
func (r *Result) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := r.WriteTSV(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
