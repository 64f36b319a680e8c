// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/treefab/treefab/internal/build"
	"github.com/treefab/treefab/internal/manifest"
	"github.com/treefab/treefab/internal/mirror"
	"github.com/treefab/treefab/internal/vfs"
)

var (
	dirColor  = color.New(color.FgBlue, color.Bold)
	linkColor = color.New(color.FgCyan)
)

func newPlanCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <manifest.hcl>",
		Short: "Dry-run a manifest and print the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			ops, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			recorder := mirror.NewRecorder()
			diag := build.NewDiagnostics(cmd.ErrOrStderr())
			shell := vfs.NewShell("/")
			ctx := build.NewContext(shell, recorder, diag)

			err = build.Eval(ctx, ops...)
			if err != nil {
				return errBuildFailed
			}

			out := cmd.OutOrStdout()
			printTree(out, shell.Root(), "")

			fmt.Fprintln(out)

			for _, call := range recorder.Calls {
				fmt.Fprintln(out, call)
			}

			return nil
		},
	}
}

func printTree(w io.Writer, node *vfs.Node, indent string) {
	for _, name := range node.Names() {
		child, _ := node.Child(name)

		switch child.Kind {
		case vfs.KindDirectory:
			fmt.Fprintf(w, "%s%s/\n", indent, dirColor.Sprint(name))
			printTree(w, child, indent+"  ")
		case vfs.KindSymlink:
			fmt.Fprintf(w, "%s%s -> /%s\n", indent,
				linkColor.Sprint(name), strings.Join(child.Target, "/"))
		default:
			fmt.Fprintf(w, "%s%s\n", indent, name)
		}
	}
}
