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

package opts

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/overwrite/pkg/config"
)

// RootOpts contains options shared by all commands
type RootOpts struct {
	// ConfigFile is an explicit config file, empty to search the workspace
	ConfigFile string
	// Debug enables debug logging
	Debug bool
	// Flags holds the configuration given on the command line
	Flags config.Config
	// Lookup reads environment variables
	Lookup config.LookupFunc
	// Stderr receives the structured log
	Stderr io.Writer
}

// 🧩 Resolve layers the configuration for a run
func (o *RootOpts) Resolve(ctx context.Context) (*config.Config, error) {
	return config.Resolve(ctx, config.Sources{
		File:   o.ConfigFile,
		Lookup: o.Lookup,
		Flags:  &o.Flags,
	})
}

// 📝 Logger builds the structured logger. Without Debug it is silent, the
// console sink being the user facing output.
func (o *RootOpts) Logger() zerolog.Logger {
	level := zerolog.Disabled
	if o.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.SyncWriter(o.Stderr)).Level(level).With().Timestamp().Logger()
}
