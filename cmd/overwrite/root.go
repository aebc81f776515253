// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/overwrite/cmd/overwrite/commands"
	"github.com/walteh/overwrite/cmd/overwrite/opts"
	"github.com/walteh/overwrite/pkg/log"
)

// newRootCmd creates the root command. Without a subcommand it runs a copy,
// which is how the GitHub Action invokes it.
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overwrite",
		Short: "Overwrite sibling files with the content of matching files",
		Long: `overwrite finds files matching a name anywhere in a workspace and copies
each one's content to an output file in the same directory.

Inputs can come from a config file (.overwrite.yaml, .yml, .json or .hcl),
from GitHub Actions inputs (INPUT_INPUT, INPUT_OUTPUT, INPUT_CONCURRENCY)
or from flags, each layer overriding the previous one.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Run(cmd, o)
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewRunCmd(o),
		commands.NewVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: search the workspace)")
	flags.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	flags.StringVarP(&o.Flags.Workspace, "workspace", "w", "", "directory to search (default: $GITHUB_WORKSPACE or .)")
	flags.StringVar(&o.Flags.Format, "format", "", "output format: console or actions (default: actions on GitHub Actions)")
	flags.StringVarP(&o.Flags.Input, "input", "i", "", "file name or glob to look for at any depth")
	flags.StringVarP(&o.Flags.Output, "output", "o", "", "file name written next to every match")
	flags.IntVar(&o.Flags.Concurrency, "concurrency", 0, "max copies in flight, 0 for unlimited")
}

// setupLogging configures zerolog based on flags
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) {
	if o.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := o.Logger()
	zerolog.DefaultContextLogger = &logger
	cmd.SetContext(logger.WithContext(cmd.Context()))
}

// failureFormat picks how main prints an error that never reached a sink
func failureFormat(o *opts.RootOpts) log.Format {
	if f, err := log.ParseFormat(o.Flags.Format); err == nil {
		return f
	}
	if o.Lookup != nil {
		if v, ok := o.Lookup("GITHUB_ACTIONS"); ok && v == "true" {
			return log.FormatActions
		}
	}
	return log.FormatConsole
}
