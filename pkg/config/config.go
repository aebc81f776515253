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

package config

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/overwrite/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// FS is the filesystem config files are read from
var FS = afero.NewOsFs()

// DefaultFiles are the config file names looked up in the workspace, in order
var DefaultFiles = []string{
	".overwrite.yaml",
	".overwrite.yml",
	".overwrite.json",
	".overwrite.hcl",
}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is everything a single run needs. Input and Output are passed
// through untouched, an empty or malformed value simply matches nothing.
type Config struct {
	Input       string `json:"input" yaml:"input"`                                 // glob sub-pattern, searched at any depth
	Output      string `json:"output" yaml:"output"`                               // file name written next to every match
	Workspace   string `json:"workspace,omitempty" yaml:"workspace,omitempty"`     // directory that is searched
	Concurrency int    `json:"concurrency,omitempty" yaml:"concurrency,omitempty"` // max in-flight copies, 0 is unlimited
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`           // console or actions
}

// 🏭 Defaults returns the configuration used when nothing else is set
func Defaults() *Config {
	return &Config{
		Workspace: ".",
		Format:    string(log.FormatConsole),
	}
}

// 🔀 Merge overlays every non-zero field of other onto cfg
func (cfg *Config) Merge(other *Config) *Config {
	if other == nil {
		return cfg
	}
	if other.Input != "" {
		cfg.Input = other.Input
	}
	if other.Output != "" {
		cfg.Output = other.Output
	}
	if other.Workspace != "" {
		cfg.Workspace = other.Workspace
	}
	if other.Concurrency != 0 {
		cfg.Concurrency = other.Concurrency
	}
	if other.Format != "" {
		cfg.Format = other.Format
	}
	return cfg
}

// 🔍 Validate checks the fields that have a fixed domain
func (cfg *Config) Validate() error {
	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}
	if cfg.Format != "" {
		if _, err := log.ParseFormat(cfg.Format); err != nil {
			return errors.Errorf("format: %w", err)
		}
	}
	return nil
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := afero.ReadFile(FS, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔎 FindFile returns the first of DefaultFiles present in dir, or "" if none is
func FindFile(dir string) (string, error) {
	for _, name := range DefaultFiles {
		candidate := filepath.Join(dir, name)
		ok, err := afero.Exists(FS, candidate)
		if err != nil {
			return "", errors.Errorf("checking %s: %w", candidate, err)
		}
		if ok {
			return candidate, nil
		}
	}
	return "", nil
}

// 📋 Sources are the layers a configuration is resolved from
type Sources struct {
	// File is an explicit config file. When empty, DefaultFiles are looked up
	// in the workspace.
	File string
	// Lookup reads environment variables
	Lookup LookupFunc
	// Flags holds values given on the command line
	Flags *Config
}

// 🧩 Resolve layers defaults, the config file, the environment and the flags,
// in that order, and validates the result
func Resolve(ctx context.Context, src Sources) (*Config, error) {
	cfg := Defaults()

	var env *Config
	if src.Lookup != nil {
		var err error
		env, err = FromEnv(src.Lookup)
		if err != nil {
			return nil, errors.Errorf("reading environment: %w", err)
		}
	}

	file := src.File
	if file == "" {
		// the workspace itself may come from the environment or the flags
		dir := Defaults().Merge(env).Merge(src.Flags).Workspace
		found, err := FindFile(dir)
		if err != nil {
			return nil, errors.Errorf("finding config file: %w", err)
		}
		file = found
	}

	if file != "" {
		fileCfg, err := Load(ctx, file)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	cfg.Merge(env).Merge(src.Flags)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Str("workspace", cfg.Workspace).
		Str("file", file).
		Msg("resolved configuration")

	return cfg, nil
}
