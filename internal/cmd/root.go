// SPDX-FileCopyrightText: 2026 The treefab authors
//
// SPDX-License-Identifier: MIT

// Package cmd implements the treefab command line.
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// errBuildFailed signals a failure that was already reported through the
// diagnostics sink, so Execute must not print it again.
var errBuildFailed = errors.New("build failed")

type rootOptions struct {
	debug      bool
	configPath string
}

// NewRootCommand returns the treefab root command with all subcommands
// attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "treefab",
		Short:         "Build declaratively described directory trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.register(root.PersistentFlags())

	root.AddCommand(
		newBuildCommand(opts),
		newPlanCommand(opts),
	)

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, errOut io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetErr(errOut)

	err := root.Execute()
	if err == nil {
		return 0
	}

	// Build failures are already on the diagnostics channel.
	if !errors.Is(err, errBuildFailed) {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}

	return 1
}

func (opts *rootOptions) register(flags *pflag.FlagSet) {
	flags.BoolVar(&opts.debug, "debug", false,
		"enable debug logging")
	flags.StringVar(&opts.configPath, "config", "",
		"YAML file with default settings")
}

func (opts *rootOptions) setup(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return cfg, err
	}

	setupLogging(cmd.ErrOrStderr(), opts.debug || cfg.Debug)

	return cfg, nil
}
