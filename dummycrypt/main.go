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

// Command dummycrypt applies the position-keyed byte substitution cipher
// to a file, in either direction.
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/dummycrypt/subbuster/internal/cipherio"
	"github.com/dummycrypt/subbuster/internal/cliutil"
	"github.com/dummycrypt/subbuster/internal/hexkey"
)

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "dummycrypt"
	myApp.Usage = "position-keyed byte substitution cipher"
	myApp.Version = VERSION
	myApp.ArgsUsage = "input output"
	myApp.Flags = []cli.Flag{
		cli.BoolFlag{Name: "e", Usage: "encrypt input into output"},
		cli.BoolFlag{Name: "d", Usage: "decrypt input into output"},
		cli.StringFlag{Name: "x", Value: "", Usage: "hex-encoded xor key stream"},
		cli.StringFlag{Name: "a", Value: "", Usage: "hex-encoded add key stream"},
		cli.StringFlag{Name: "m", Value: "", Usage: "hex-encoded permutation index stream (2 hex bytes per position)"},
	}
	myApp.Action = action

	if err := myApp.Run(os.Args); err != nil {
		cliutil.Fatal(err)
	}
}

func action(c *cli.Context) error {
	config := Config{
		Encrypt: c.Bool("e"),
		Decrypt: c.Bool("d"),
		X:       c.String("x"),
		A:       c.String("a"),
		M:       c.String("m"),
	}

	if !config.Encrypt && !config.Decrypt {
		cli.ShowAppHelp(c)
		return nil
	}
	if config.Encrypt && config.Decrypt {
		return errors.New("-e and -d are mutually exclusive")
	}
	if c.NArg() != 2 {
		cli.ShowAppHelp(c)
		return errors.Errorf("expected exactly 2 positional arguments (input output), got %d", c.NArg())
	}
	config.Input = c.Args().Get(0)
	config.Output = c.Args().Get(1)

	key, err := buildKey(config)
	if err != nil {
		return err
	}

	mode := cipherio.Encrypt
	if config.Decrypt {
		mode = cipherio.Decrypt
	}

	in, err := os.Open(config.Input)
	if err != nil {
		return errors.Wrapf(err, "open input %s", config.Input)
	}
	defer in.Close()

	out, err := os.Create(config.Output)
	if err != nil {
		return errors.Wrapf(err, "create output %s", config.Output)
	}
	defer out.Close()

	l := key.Length()
	log.Println("mode:", modeName(mode))
	log.Println("key length:", l)

	if err := cipherio.Transform(in, out, key, mode); err != nil {
		return errors.Wrapf(err, "transform %s -> %s", config.Input, config.Output)
	}
	return nil
}

func buildKey(config Config) (cipherio.Key, error) {
	x, err := hexkey.DecodeBytes(config.X)
	if err != nil {
		return cipherio.Key{}, errors.Wrap(err, "-x")
	}
	a, err := hexkey.DecodeBytes(config.A)
	if err != nil {
		return cipherio.Key{}, errors.Wrap(err, "-a")
	}
	m, err := hexkey.DecodeWords(config.M)
	if err != nil {
		return cipherio.Key{}, errors.Wrap(err, "-m")
	}
	return cipherio.Key{X: x, A: a, M: m}, nil
}

func modeName(mode cipherio.Mode) string {
	if mode == cipherio.Decrypt {
		return "decrypt"
	}
	return "encrypt"
}
