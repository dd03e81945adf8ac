package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/dummycrypt/subbuster/internal/cipherio"
	"github.com/dummycrypt/subbuster/internal/hexkey"
	"github.com/dummycrypt/subbuster/internal/keylen"
)

// diagnostics writes subbuster -v's length-candidate and per-length-attempt
// dumps. With no -diag path it logs to stderr via the standard logger,
// matching the teacher's habit of defaulting ambient output to stderr; with
// -diag it writes CSV the way std/snmp.go periodically writes CSV rows,
// optionally wrapped in golang/snappy block compression when the path ends
// in ".csnappy".
type diagnostics struct {
	verbose bool
	csv     *csv.Writer
	closers []io.Closer
}

func newDiagnostics(verbose bool, path string) (*diagnostics, error) {
	d := &diagnostics{verbose: verbose}
	if !verbose || path == "" {
		return d, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create diagnostics file %s", path)
	}
	d.closers = append(d.closers, f)

	var w io.Writer = f
	if strings.HasSuffix(path, ".csnappy") {
		sw := snappy.NewBufferedWriter(f)
		d.closers = append(d.closers, sw)
		w = sw
	}

	d.csv = csv.NewWriter(w)
	if err := d.csv.Write([]string{"kind", "length", "model", "x", "a", "m", "score"}); err != nil {
		return nil, errors.Wrap(err, "write diagnostics header")
	}
	return d, nil
}

func (d *diagnostics) Close() error {
	if d.csv != nil {
		d.csv.Flush()
	}
	// close in reverse order: snappy writer (if any) before the file it wraps
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			return err
		}
	}
	return nil
}

// LengthCandidates logs the key-length estimator's ranked output, plus a
// mean/stddev summary of the scores so a reader can see how decisive the
// top candidate's lead is.
func (d *diagnostics) LengthCandidates(cands []keylen.Candidate) {
	if !d.verbose {
		return
	}

	scores := make([]float64, len(cands))
	for i, c := range cands {
		scores[i] = c.Score
	}
	mean, _ := stats.Mean(stats.Float64Data(scores))
	stddev, _ := stats.StandardDeviation(stats.Float64Data(scores))

	if d.csv == nil {
		for _, c := range cands {
			log.Printf("length candidate: l=%d score=%f", c.Length, c.Score)
		}
		log.Printf("length candidate summary: mean=%f stddev=%f", mean, stddev)
		return
	}

	for _, c := range cands {
		if err := d.csv.Write([]string{"length", strconv.Itoa(c.Length), "", "", "", "", fmt.Sprintf("%f", c.Score)}); err != nil {
			log.Println(err)
		}
	}
	if err := d.csv.Write([]string{"length-summary", "", "", "", "", "", fmt.Sprintf("mean=%f stddev=%f", mean, stddev)}); err != nil {
		log.Println(err)
	}
	d.csv.Flush()
}

// Attempt logs one per-length breaker attempt.
func (d *diagnostics) Attempt(model, length int, key cipherio.Key, score float64) {
	if !d.verbose {
		return
	}

	x := hexkey.EncodeBytes(key.X)
	a := hexkey.EncodeBytes(key.A)
	m := hexkey.EncodeWords(key.M)

	if d.csv == nil {
		log.Printf("attempt: model=%d length=%d x=%s a=%s m=%s score=%f", model, length, x, a, m, score)
		return
	}

	if err := d.csv.Write([]string{"attempt", strconv.Itoa(length), strconv.Itoa(model), x, a, m, fmt.Sprintf("%f", score)}); err != nil {
		log.Println(err)
	}
	d.csv.Flush()
}
