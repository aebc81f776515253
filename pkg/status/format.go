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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/overwrite/pkg/operation"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // base width for the source path
	statusWidth = 11 // width for the status text
)

// 📊 FileStatus is what a copy did to its destination
type FileStatus int

const (
	StatusCreated     FileStatus = iota // destination did not exist
	StatusOverwritten                   // destination was replaced
	StatusFailed                        // read or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusOverwritten:
		return "overwritten"
	default:
		return "failed"
	}
}

// StatusOf classifies a copy result
func StatusOf(res operation.Result) FileStatus {
	switch {
	case !res.OK():
		return StatusFailed
	case res.Created:
		return StatusCreated
	default:
		return StatusOverwritten
	}
}

// 🎯 FormatResult formats a copy result for display
func FormatResult(res operation.Result) string {
	st := StatusOf(res)

	var prefix string
	switch st {
	case StatusCreated:
		prefix = color.GreenString("✓")
	case StatusOverwritten:
		prefix = color.YellowString("⟳")
	default:
		prefix = color.RedString("✗")
	}

	line := fmt.Sprintf("%s%s %-*s %-*s → %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		nameWidth, res.Source,
		statusWidth, st,
		res.Destination,
	)

	if st == StatusFailed {
		return line + " " + color.HiBlackString("(%v)", res.Err)
	}
	return line + " " + color.HiBlackString("(%s)", formatBytes(res.Bytes))
}

// formatBytes prints a byte count with a binary unit
func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := int64(n) / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
