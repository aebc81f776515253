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

package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/overwrite/pkg/glob"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		errContains string
	}{
		{
			name: "all_collaborators",
			opts: Options{Expander: glob.StaticExpander{}, Files: &mockFiles{}, Sink: &recordingSink{}},
		},
		{
			name:        "missing_expander",
			opts:        Options{Files: &mockFiles{}, Sink: &recordingSink{}},
			errContains: "expander is required",
		},
		{
			name:        "missing_files",
			opts:        Options{Expander: glob.StaticExpander{}, Sink: &recordingSink{}},
			errContains: "files is required",
		},
		{
			name:        "missing_sink",
			opts:        Options{Expander: glob.StaticExpander{}, Files: &mockFiles{}},
			errContains: "sink is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copier, err := New(tt.opts)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, copier)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, copier)
		})
	}
}

func TestReportErrors(t *testing.T) {
	report := &Report{Results: []Result{
		{Source: "a/test.env"},
		{Source: "b/test.env"},
	}}
	assert.NoError(t, report.Errors(), "no failures is a nil error")
	assert.False(t, report.Failed())

	copied, failed := report.Counts()
	assert.Equal(t, 2, copied)
	assert.Zero(t, failed)
}
