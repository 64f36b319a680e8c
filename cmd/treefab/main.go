// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/treefab/treefab/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stderr))
}
