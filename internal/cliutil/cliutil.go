// Package cliutil holds the small pieces of CLI glue shared by dummycrypt
// and subbuster: fatal-error reporting and colored warnings, in the
// teacher's own idiom (client/main.go's checkError, color.Red warnings).
package cliutil

import (
	"log"
	"os"

	"github.com/fatih/color"
)

// Fatal reports err (with its pkg/errors wrap chain, if any) and exits
// non-zero. Mirrors the teacher's checkError(err) helper.
func Fatal(err error) {
	if err == nil {
		return
	}
	log.Printf("%+v\n", err)
	os.Exit(1)
}

// Warn prints a non-fatal yellow warning, e.g. an ambiguous key-length
// estimate.
func Warn(format string, args ...interface{}) {
	color.Yellow(format, args...)
}

// WarnAbort prints a red warning for an analytic abort (spec.md §7 item 3).
func WarnAbort(format string, args ...interface{}) {
	color.Red(format, args...)
}
