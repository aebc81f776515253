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
	"strconv"
	"strings"

	"github.com/walteh/overwrite/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// LookupFunc reads an environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// InputEnvName returns the variable a GitHub Actions input is delivered in
func InputEnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// GetInput reads a GitHub Actions input. The value is trimmed, and a missing
// input is the empty string.
func GetInput(lookup LookupFunc, name string) string {
	v, _ := lookup(InputEnvName(name))
	return strings.TrimSpace(v)
}

// 🌍 FromEnv reads the configuration a GitHub Actions runner provides
func FromEnv(lookup LookupFunc) (*Config, error) {
	cfg := &Config{
		Input:  GetInput(lookup, "input"),
		Output: GetInput(lookup, "output"),
	}

	if ws, ok := lookup("GITHUB_WORKSPACE"); ok {
		cfg.Workspace = ws
	}

	if v, ok := lookup("GITHUB_ACTIONS"); ok && v == "true" {
		cfg.Format = string(log.FormatActions)
	}

	if raw := GetInput(lookup, "concurrency"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Errorf("parsing input concurrency %q: %w", raw, err)
		}
		cfg.Concurrency = n
	}

	return cfg, nil
}

// MapLookup adapts a map to a LookupFunc
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}
