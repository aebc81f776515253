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
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/walteh/overwrite/pkg/workspace"
)

// 📣 recordingSink records every event it receives
type recordingSink struct {
	mu    sync.Mutex
	infos []string
	errs  []error
	fails []error
}

func (s *recordingSink) Info(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = append(s.infos, msg)
}

func (s *recordingSink) Error(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *recordingSink) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails = append(s.fails, err)
}

func (s *recordingSink) silent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.infos) == 0 && len(s.errs) == 0 && len(s.fails) == 0
}

// 💾 countingFiles wraps real Files, counting calls and injecting failures
type countingFiles struct {
	workspace.Files

	readErr  map[string]error
	writeErr map[string]error
	delay    time.Duration

	mu     sync.Mutex
	reads  []string
	writes []string

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *countingFiles) ReadText(ctx context.Context, path string) ([]byte, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.reads = append(f.reads, path)
	f.mu.Unlock()

	if err := f.readErr[path]; err != nil {
		return nil, err
	}
	return f.Files.ReadText(ctx, path)
}

func (f *countingFiles) WriteText(ctx context.Context, path string, content []byte) error {
	f.mu.Lock()
	f.writes = append(f.writes, path)
	f.mu.Unlock()

	if err := f.writeErr[path]; err != nil {
		return err
	}
	return f.Files.WriteText(ctx, path, content)
}

// 🎭 mockFiles is a testify mock of workspace.Files
type mockFiles struct {
	mock.Mock
}

func (m *mockFiles) ReadText(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *mockFiles) WriteText(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *mockFiles) Exists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

// 🔍 expanderFunc adapts a function to glob.Expander
type expanderFunc func(ctx context.Context, pattern string) ([]string, error)

func (f expanderFunc) Expand(ctx context.Context, pattern string) ([]string, error) {
	return f(ctx, pattern)
}
