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
	"github.com/walteh/overwrite/pkg/glob"
	"github.com/walteh/overwrite/pkg/log"
	"github.com/walteh/overwrite/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains the collaborators of a Copier
type Options struct {
	// Expander turns the input pattern into source paths
	Expander glob.Expander
	// Files reads sources and writes destinations
	Files workspace.Files
	// Sink receives info, error and failure events
	Sink log.Sink
}

// 📦 Copier fans a pattern out into independent read-and-rewrite copies
type Copier struct {
	expander glob.Expander
	files    workspace.Files
	sink     log.Sink
}

// 🏭 New creates a new copier with the given options
func New(opts Options) (*Copier, error) {
	if opts.Expander == nil {
		return nil, errors.Errorf("expander is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("files is required")
	}
	if opts.Sink == nil {
		return nil, errors.Errorf("sink is required")
	}
	return &Copier{
		expander: opts.Expander,
		files:    opts.Files,
		sink:     opts.Sink,
	}, nil
}
