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
	"github.com/hashicorp/go-multierror"
)

// 📄 Result is the outcome of copying one source path
type Result struct {
	Source      string
	Destination string
	Bytes       int   // bytes written, zero on failure
	Created     bool  // destination did not exist before the write
	Err         error // read or write failure
}

// OK reports whether the copy succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// 📊 Report collects the results of a run, in match order
type Report struct {
	Pattern string
	Results []Result

	first error
}

// Err returns the first failure in settlement order, or nil
func (r *Report) Err() error {
	return r.first
}

// Failed reports whether any path failed
func (r *Report) Failed() bool {
	return r.first != nil
}

// Errors returns every failure, in match order, as a single error
func (r *Report) Errors() error {
	var merr *multierror.Error
	for _, res := range r.Results {
		if res.Err != nil {
			merr = multierror.Append(merr, res.Err)
		}
	}
	return merr.ErrorOrNil()
}

// Counts returns how many paths were copied and how many failed
func (r *Report) Counts() (copied, failed int) {
	for _, res := range r.Results {
		if res.OK() {
			copied++
		} else {
			failed++
		}
	}
	return copied, failed
}
