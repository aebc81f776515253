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

package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

const (
	fileMode = 0644
	dirMode  = 0755

	maxLinkHops = 40
)

// 💾 Files reads and writes whole text files inside a workspace
type Files interface {
	// ReadText returns the full content of path
	ReadText(ctx context.Context, path string) ([]byte, error)
	// WriteText replaces path with content
	WriteText(ctx context.Context, path string, content []byte) error
	// Exists reports whether path exists
	Exists(path string) (bool, error)
}

// 🔧 FileManager implements Files on top of an afero filesystem
type FileManager struct {
	fs afero.Fs
}

var _ Files = (*FileManager)(nil)

// 🏭 New creates a file manager. All paths are resolved against fs.
func New(fs afero.Fs) *FileManager {
	return &FileManager{fs: fs}
}

// Root returns an afero filesystem confined to dir. Relative dirs are resolved
// against the working directory.
func Root(dir string) (afero.Fs, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Errorf("resolving workspace %s: %w", dir, err)
	}
	return afero.NewBasePathFs(afero.NewOsFs(), abs), nil
}

// ReadText implements Files
func (m *FileManager) ReadText(ctx context.Context, path string) ([]byte, error) {
	content, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Trace().Str("path", path).Int("bytes", len(content)).Msg("read file")
	return content, nil
}

// WriteText implements Files. The content is written to a temp file next to the
// destination and renamed over it, so the destination never holds partial content.
// An existing destination keeps its permission bits, and a symlinked destination
// is written through to its target.
func (m *FileManager) WriteText(ctx context.Context, path string, content []byte) error {
	target, inPlace, err := m.resolveLinks(path)
	if err != nil {
		return err
	}

	if inPlace {
		// the link points outside the workspace, so only the OS can follow it
		if err := m.writeThrough(target, content); err != nil {
			return err
		}
		zerolog.Ctx(ctx).Trace().Str("path", path).Int("bytes", len(content)).Msg("wrote file through link")
		return nil
	}

	mode := os.FileMode(0)
	if fi, err := m.fs.Stat(target); err == nil {
		mode = fi.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return errors.Errorf("checking destination: %w", err)
	}

	dir := filepath.Dir(target)
	if err := m.fs.MkdirAll(dir, dirMode); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	tempPath := filepath.Join(dir, "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")

	if err := afero.WriteFile(m.fs, tempPath, content, fileMode); err != nil {
		_ = m.fs.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}

	if mode != 0 {
		if err := m.fs.Chmod(tempPath, mode); err != nil {
			_ = m.fs.Remove(tempPath)
			return errors.Errorf("keeping destination mode: %w", err)
		}
	}

	if err := m.fs.Rename(tempPath, target); err != nil {
		_ = m.fs.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Trace().Str("path", path).Str("target", target).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

// resolveLinks follows symlinks from path inside the workspace. inPlace is set
// when a link cannot be followed through the filesystem, in which case path is
// returned unchanged.
func (m *FileManager) resolveLinks(path string) (target string, inPlace bool, err error) {
	lstater, ok := m.fs.(afero.Lstater)
	if !ok {
		return path, false, nil
	}
	reader, canRead := m.fs.(afero.LinkReader)

	target = path
	for hops := 0; hops < maxLinkHops; hops++ {
		fi, _, err := lstater.LstatIfPossible(target)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return target, false, nil
			}
			return "", false, errors.Errorf("checking destination: %w", err)
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			return target, false, nil
		}
		if !canRead {
			return path, true, nil
		}

		link, err := reader.ReadlinkIfPossible(target)
		if err != nil {
			return "", false, errors.Errorf("reading link %s: %w", target, err)
		}
		if filepath.IsAbs(link) {
			return path, true, nil
		}
		next := filepath.Join(filepath.Dir(target), link)
		if next == ".." || strings.HasPrefix(next, ".."+string(filepath.Separator)) {
			return path, true, nil
		}
		target = next
	}
	return "", false, errors.Errorf("too many links resolving %s", path)
}

// writeThrough truncates path and writes content, following any link
func (m *FileManager) writeThrough(path string, content []byte) error {
	f, err := m.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return errors.Errorf("opening destination: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return errors.Errorf("writing destination: %w", err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing destination: %w", err)
	}
	return nil
}

// Exists implements Files
func (m *FileManager) Exists(path string) (bool, error) {
	_, err := m.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}
