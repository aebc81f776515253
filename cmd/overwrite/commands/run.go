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

package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/overwrite/cmd/overwrite/opts"
	"github.com/walteh/overwrite/pkg/config"
	"github.com/walteh/overwrite/pkg/glob"
	"github.com/walteh/overwrite/pkg/log"
	"github.com/walteh/overwrite/pkg/operation"
	"github.com/walteh/overwrite/pkg/status"
	"github.com/walteh/overwrite/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// ErrRunFailed is returned once a failure has been reported to the console
var ErrRunFailed = errors.Base("run failed")

// NewRunCmd creates the run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Copy every matching file to a sibling output file",
		Long: `Run finds every file named by --input anywhere in the workspace and writes
its content to --output in the same directory.
It will:
1. Resolve the configuration (file, environment, flags)
2. Expand **/<input> below the workspace
3. Copy every match concurrently
4. Fail if any copy failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, o)
		},
	}

	return cmd
}

// 🏃 Run executes a copy run, printing to the command's output
func Run(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "run").Logger().WithContext(cmd.Context())

	cfg, err := o.Resolve(ctx)
	if err != nil {
		return errors.Errorf("resolving configuration: %w", err)
	}

	format, err := log.ParseFormat(cfg.Format)
	if err != nil {
		return errors.Errorf("parsing format: %w", err)
	}

	out := cmd.OutOrStdout()
	logger := log.New(out, format, *zerolog.Ctx(ctx))
	ctx = log.NewContext(ctx, logger)

	logger.Header(fmt.Sprintf("%s → %s in %s", glob.Recursive(cfg.Input), cfg.Output, cfg.Workspace))

	report, err := copyWorkspace(ctx, cfg)
	if err != nil {
		logger.Fail(err)
		return ErrRunFailed
	}

	if logger.Format() == log.FormatConsole {
		status.NewPrinter(out, o.Debug).Print(report)
	}

	zerolog.Ctx(ctx).Debug().Int("errors", logger.ErrorCount()).Msg("run finished")

	if logger.Failed() != nil {
		return ErrRunFailed
	}
	return nil
}

// copyWorkspace wires a copier over the workspace and runs it
func copyWorkspace(ctx context.Context, cfg *config.Config) (*operation.Report, error) {
	fs, err := workspace.Root(cfg.Workspace)
	if err != nil {
		return nil, err
	}

	copier, err := operation.New(operation.Options{
		Expander: glob.NewDoublestarExpander(fs),
		Files:    workspace.New(fs),
		Sink:     log.FromContext(ctx),
	})
	if err != nil {
		return nil, errors.Errorf("creating copier: %w", err)
	}

	return copier.Run(ctx, cfg)
}
