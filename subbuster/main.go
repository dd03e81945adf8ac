// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command subbuster is a ciphertext-only cryptanalyzer for DummyCrypt: it
// recovers the key (and length, if not given) from a ciphertext and a
// plaintext frequency sample.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/dummycrypt/subbuster/internal/breaker"
	"github.com/dummycrypt/subbuster/internal/cipherio"
	"github.com/dummycrypt/subbuster/internal/cliutil"
	"github.com/dummycrypt/subbuster/internal/hexkey"
	"github.com/dummycrypt/subbuster/internal/keylen"
)

// ambiguousLengthMargin is how close the second-best length candidate's score
// must come to the best's before the top guess is flagged as ambiguous.
const ambiguousLengthMargin = 0.05

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "subbuster"
	myApp.Usage = "ciphertext-only cryptanalyzer for dummycrypt"
	myApp.Version = VERSION
	myApp.ArgsUsage = "input sample"
	myApp.Flags = []cli.Flag{
		cli.IntFlag{Name: "m", Value: modelXOR, Usage: "model: 1=xor, 2=xor-add, 3=xor-add-mix, 4=reserved"},
		cli.IntFlag{Name: "l", Value: 0, Usage: "fix the key length instead of estimating it"},
		cli.IntFlag{Name: "k", Value: defaultUpperK, Usage: "upper bound for key-length estimation"},
		cli.BoolFlag{Name: "v", Usage: "enable verbose dumps"},
		cli.StringFlag{Name: "diag", Value: "", Usage: "persist verbose dumps as CSV (or .csnappy for snappy-compressed CSV)"},
	}
	myApp.Action = action

	if err := myApp.Run(os.Args); err != nil {
		cliutil.Fatal(err)
	}
}

func action(c *cli.Context) error {
	config := Config{
		Model:   c.Int("m"),
		Length:  c.Int("l"),
		K:       c.Int("k"),
		Verbose: c.Bool("v"),
		Diag:    c.String("diag"),
	}

	if config.Model == modelReserved {
		return errors.New("-m 4 (level 4) is reserved/experimental and not implemented")
	}
	if config.Model < modelXOR || config.Model > modelXORAddMix {
		return errors.Errorf("-m must be 1, 2 or 3, got %d", config.Model)
	}
	if c.NArg() != 2 {
		cli.ShowAppHelp(c)
		return errors.Errorf("expected exactly 2 positional arguments (input sample), got %d", c.NArg())
	}
	config.Input = c.Args().Get(0)
	config.Sample = c.Args().Get(1)

	ciphertext, err := os.ReadFile(config.Input)
	if err != nil {
		return errors.Wrapf(err, "read input %s", config.Input)
	}
	sample, err := os.ReadFile(config.Sample)
	if err != nil {
		return errors.Wrapf(err, "read sample %s", config.Sample)
	}

	diag, err := newDiagnostics(config.Verbose, config.Diag)
	if err != nil {
		return err
	}
	defer diag.Close()

	lengths, err := candidateLengths(config, ciphertext, diag)
	if err != nil {
		return err
	}

	result := runBreakerAcrossLengths(config, ciphertext, sample, lengths, diag)

	if config.Model == modelXORAddMix && !result.anyRecovered {
		os.Stdout.WriteString("No key found.\n")
		return nil
	}

	printBestKey(config.Model, result.score, result.length, result.key)
	return nil
}

// candidateLengths returns either the single fixed length (-l) or the top-5
// lengths from the key-length estimator bounded by -k, per spec.md §2/§6.
func candidateLengths(config Config, ciphertext []byte, diag *diagnostics) ([]int, error) {
	if config.Length > 0 {
		return []int{config.Length}, nil
	}

	candidates := keylen.Estimate(ciphertext, config.K)
	diag.LengthCandidates(candidates)

	if len(candidates) >= 2 && candidates[0].Score-candidates[1].Score < ambiguousLengthMargin*candidates[0].Score {
		cliutil.Warn("key-length estimate is ambiguous: l=%d (score %f) barely beats l=%d (score %f)",
			candidates[0].Length, candidates[0].Score, candidates[1].Length, candidates[1].Score)
	}

	n := topLengthGuesses
	if n > len(candidates) {
		n = len(candidates)
	}
	lengths := make([]int, n)
	for i := 0; i < n; i++ {
		lengths[i] = candidates[i].Length
	}
	return lengths, nil
}

type breakResult struct {
	key          cipherio.Key
	score        float64
	length       int
	anyRecovered bool // true once some length candidate scored above breaker.AbortScore
}

// runBreakerAcrossLengths tries the selected model's breaker at every
// candidate length and keeps the best-scoring result. A per-length level-3
// abort contributes breaker.AbortScore and does not stop the remaining
// candidates from being tried, per spec.md §7.
func runBreakerAcrossLengths(config Config, ciphertext, sample []byte, lengths []int, diag *diagnostics) breakResult {
	var best breakResult
	first := true

	for _, l := range lengths {
		key, score := runBreaker(config.Model, ciphertext, sample, l)
		diag.Attempt(config.Model, l, key, score)

		if config.Model == modelXORAddMix && score == breaker.AbortScore {
			cliutil.WarnAbort("length %d: level-3 pruning eliminated every residue candidate, aborting this length", l)
		}
		if score > breaker.AbortScore {
			best.anyRecovered = true
		}
		if first || score > best.score {
			best.key, best.score, best.length = key, score, l
			first = false
		}
	}
	return best
}

func runBreaker(model int, ciphertext, sample []byte, l int) (cipherio.Key, float64) {
	switch model {
	case modelXOR:
		return breaker.RunL1(ciphertext, sample, l)
	case modelXORAdd:
		return breaker.RunL2(ciphertext, sample, l)
	default:
		return breaker.RunL3(ciphertext, sample, l, breaker.DefaultL3Params())
	}
}

func printBestKey(model int, score float64, length int, key cipherio.Key) {
	line := fmt.Sprintf("Best key: %f : %d : x = %s", score, length, hexkey.EncodeBytes(key.X))
	if model >= modelXORAdd {
		line += " a = " + hexkey.EncodeBytes(key.A)
	}
	if model == modelXORAddMix {
		line += " m = " + hexkey.EncodeWords(key.M)
	}
	os.Stdout.WriteString(line + "\n")
}
