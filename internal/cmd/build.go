// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treefab/treefab/internal/build"
	"github.com/treefab/treefab/internal/manifest"
	"github.com/treefab/treefab/internal/mirror"
	"github.com/treefab/treefab/internal/vfs"
)

func newBuildCommand(opts *rootOptions) *cobra.Command {
	var (
		mount    string
		cpioPath string
	)

	cmd := &cobra.Command{
		Use:   "build <manifest.hcl>",
		Short: "Build the tree a manifest describes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			if mount == "" {
				mount = cfg.Mount
			}

			if mount == "" {
				mount = "."
			}

			ops, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			if cpioPath != "" {
				return buildArchive(cmd, ops, cpioPath)
			}

			return buildDir(cmd, ops, mount)
		},
	}

	cmd.Flags().StringVarP(&mount, "mount", "C", "",
		"physical directory the tree root corresponds to")
	cmd.Flags().StringVar(&cpioPath, "cpio", "",
		"write a cpio archive instead of mirroring onto the mount")

	return cmd
}

func buildDir(cmd *cobra.Command, ops []build.Op, mount string) error {
	osMirror := mirror.NewOS()

	err := osMirror.EnsureDir(mount)
	if err != nil {
		return fmt.Errorf("mount %s: %w", mount, err)
	}

	diag := build.NewDiagnostics(cmd.ErrOrStderr())
	ctx := build.NewContext(vfs.NewShell(mount), osMirror, diag)

	err = build.Eval(ctx, ops...)
	if err != nil {
		return errBuildFailed
	}

	return nil
}

func buildArchive(cmd *cobra.Command, ops []build.Op, cpioPath string) error {
	archive := mirror.NewArchive()

	// Archive member names are mount-relative, so the mount is the
	// virtual root itself.
	diag := build.NewDiagnostics(cmd.ErrOrStderr())
	ctx := build.NewContext(vfs.NewShell("/"), archive, diag)

	err := build.Eval(ctx, ops...)
	if err != nil {
		return errBuildFailed
	}

	file, err := os.Create(cpioPath)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}

	err = archive.WriteTo(file)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("write archive: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close archive file: %w", err)
	}

	return nil
}
