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
	"context"
	"fmt"
	"path"

	"github.com/rs/zerolog"
	"github.com/walteh/overwrite/pkg/config"
	"github.com/walteh/overwrite/pkg/glob"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// Destination returns the sibling of src named output
func Destination(src, output string) string {
	return path.Join(path.Dir(src), output)
}

// 🏃 Run expands cfg.Input below the workspace and overwrites the sibling
// cfg.Output of every match with the match's content.
//
// Every path is copied concurrently and independently. A failing path is reported
// to the sink with Error and does not stop the others. Once all paths have settled,
// the first failure is passed to the sink's Fail. The returned error is only set
// when the pattern could not be expanded.
func (c *Copier) Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	pattern := glob.Recursive(cfg.Input)

	files, err := c.expander.Expand(ctx, pattern)
	if err != nil {
		return nil, errors.Errorf("expanding pattern %q: %w", pattern, err)
	}

	report := &Report{
		Pattern: pattern,
		Results: make([]Result, len(files)),
	}

	if len(files) == 0 {
		logger.Debug().Str("pattern", pattern).Msg("no files matched")
		return report, nil
	}

	logger.Debug().Str("pattern", pattern).Int("files", len(files)).Int("concurrency", cfg.Concurrency).Msg("copying files")

	// no derived context: a failing path must not cancel its siblings
	var g errgroup.Group
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res := c.copyFile(ctx, file, cfg.Output)
			report.Results[i] = res

			if res.Err != nil {
				c.sink.Error(res.Err)
				return res.Err
			}

			c.sink.Info(fmt.Sprintf("Overwrote %s to %s", res.Source, res.Destination))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		report.first = err
		c.sink.Fail(err)
	}

	return report, nil
}

// 📄 copyFile copies one source onto its destination. The write is skipped
// when the read fails.
func (c *Copier) copyFile(ctx context.Context, src, output string) Result {
	res := Result{
		Source:      src,
		Destination: Destination(src, output),
	}

	content, err := c.files.ReadText(ctx, src)
	if err != nil {
		res.Err = errors.Errorf("reading %s: %w", src, err)
		return res
	}

	existed, err := c.files.Exists(res.Destination)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", res.Destination).Msg("could not stat destination")
	}

	if err := c.files.WriteText(ctx, res.Destination, content); err != nil {
		res.Err = errors.Errorf("writing %s: %w", res.Destination, err)
		return res
	}

	res.Bytes = len(content)
	res.Created = !existed
	return res
}
