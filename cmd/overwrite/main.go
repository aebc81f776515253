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
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/overwrite/cmd/overwrite/commands"
	"github.com/walteh/overwrite/cmd/overwrite/opts"
	"github.com/walteh/overwrite/pkg/config"
	"github.com/walteh/overwrite/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// lookupEnv reads the environment, replaced in tests
var lookupEnv config.LookupFunc = os.LookupEnv

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o := &opts.RootOpts{
		Lookup: lookupEnv,
		Stderr: stderr,
	}

	cmd := newRootCmd(o)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, commands.ErrRunFailed) {
			// configuration and usage errors happen before any sink exists
			log.New(stdout, failureFormat(o), zerolog.Nop()).Fail(err)
		}
		return 1
	}
	return 0
}
