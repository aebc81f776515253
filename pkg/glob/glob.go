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

package glob

import (
	"context"
	"path"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Expander turns a glob pattern into the list of files it matches
type Expander interface {
	// Expand returns the matching files as slash-separated paths relative to the
	// expander's root. No match is an empty result, not an error.
	Expand(ctx context.Context, pattern string) ([]string, error)
}

// Recursive prefixes a sub-pattern so it matches at any depth below the root
func Recursive(pattern string) string {
	return "**/" + pattern
}

// 🌲 DoublestarExpander expands patterns against an afero filesystem
type DoublestarExpander struct {
	fs afero.Fs
}

var _ Expander = (*DoublestarExpander)(nil)

// 🏭 NewDoublestarExpander creates an expander rooted at the top of fs
func NewDoublestarExpander(fs afero.Fs) *DoublestarExpander {
	return &DoublestarExpander{fs: fs}
}

// Expand implements Expander. Directories never appear in the result.
func (e *DoublestarExpander) Expand(ctx context.Context, pattern string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.Glob(afero.NewIOFS(e.fs), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("globbing %q: %w", pattern, err)
	}

	for i, m := range matches {
		matches[i] = path.Clean(m)
	}

	logger.Debug().Str("pattern", pattern).Int("matches", len(matches)).Msg("expanded pattern")

	return matches, nil
}

// 📋 StaticExpander returns a fixed list of paths for every pattern
type StaticExpander []string

var _ Expander = StaticExpander(nil)

// Expand implements Expander
func (s StaticExpander) Expand(ctx context.Context, pattern string) ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}
