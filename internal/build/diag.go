// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package build

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var errorPrefix = color.New(color.FgRed, color.Bold)

// Diagnostics records error diagnostics for one evaluation and renders them
// for humans. A failed build always leaves at least one recorded error.
type Diagnostics struct {
	out   io.Writer
	count int
}

// NewDiagnostics returns a sink writing to out. A nil out only counts.
func NewDiagnostics(out io.Writer) *Diagnostics {
	return &Diagnostics{out: out}
}

// Report records one diagnostic and prints it.
func (d *Diagnostics) Report(err error) {
	d.count++

	if d.out == nil {
		return
	}

	fmt.Fprintf(d.out, "%s %v\n", errorPrefix.Sprint("error:"), err)
}

// Errors returns the number of recorded diagnostics.
func (d *Diagnostics) Errors() int {
	return d.count
}

// Failed reports whether any diagnostic was recorded.
func (d *Diagnostics) Failed() bool {
	return d.count > 0
}
