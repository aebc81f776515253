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

package glob_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/overwrite/pkg/glob"
)

// 🧪 writeTree creates the given files (with dummy content) below root
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755), "creating parent of %s", f)
		require.NoError(t, os.WriteFile(p, []byte(f), 0644), "writing %s", f)
	}
}

func TestDoublestarExpander(t *testing.T) {
	tests := []struct {
		name        string
		files       []string
		dirs        []string
		pattern     string
		want        []string
		errContains string
	}{
		{
			name:    "recursive_match_at_any_depth",
			files:   []string{"test.env", "a/test.env", "a/b/c/test.env", "a/other.env"},
			pattern: glob.Recursive("test.env"),
			want:    []string{"test.env", "a/test.env", "a/b/c/test.env"},
		},
		{
			name:    "hidden_directories_are_searched",
			files:   []string{".config/test.env", "x/test.env"},
			pattern: glob.Recursive("test.env"),
			want:    []string{".config/test.env", "x/test.env"},
		},
		{
			name:    "wildcard_sub_pattern",
			files:   []string{"a/dev.env", "b/prod.env", "b/prod.txt"},
			pattern: glob.Recursive("*.env"),
			want:    []string{"a/dev.env", "b/prod.env"},
		},
		{
			name:    "no_match_is_empty",
			files:   []string{"a/other.env"},
			pattern: glob.Recursive("test.env"),
			want:    []string{},
		},
		{
			name:    "directories_are_not_matched",
			files:   []string{"a/test.env"},
			dirs:    []string{"b/test.env"},
			pattern: glob.Recursive("test.env"),
			want:    []string{"a/test.env"},
		},
		{
			name:        "invalid_pattern",
			files:       []string{"a/test.env"},
			pattern:     glob.Recursive("[test.env"),
			errContains: "invalid pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

			root := t.TempDir()
			writeTree(t, root, tt.files...)
			for _, d := range tt.dirs {
				require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755))
			}

			expander := glob.NewDoublestarExpander(afero.NewBasePathFs(afero.NewOsFs(), root))
			got, err := expander.Expand(ctx, tt.pattern)

			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestRecursive(t *testing.T) {
	assert.Equal(t, "**/test.env", glob.Recursive("test.env"))
	assert.Equal(t, "**/", glob.Recursive(""), "empty input is passed through unchanged")
}

func TestStaticExpander(t *testing.T) {
	files := glob.StaticExpander{"a/test.env", "b/test.env"}

	got, err := files.Expand(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/test.env", "b/test.env"}, got)

	got[0] = "mutated"
	again, err := files.Expand(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "a/test.env", again[0], "callers must not be able to mutate the static list")
}
