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
	"io"

	"github.com/pterm/pterm"
	"github.com/walteh/overwrite/pkg/operation"
)

// 🖨️ Printer prints the end-of-run summary of a report
type Printer struct {
	w        io.Writer
	detailed bool
}

// 🏭 NewPrinter creates a printer writing to w. A detailed printer lists every
// result before the totals.
func NewPrinter(w io.Writer, detailed bool) *Printer {
	return &Printer{w: w, detailed: detailed}
}

// 📋 Print prints the report
func (p *Printer) Print(report *operation.Report) {
	if report == nil {
		return
	}

	if len(report.Results) == 0 {
		pterm.Info.WithWriter(p.w).WithPrefix(pterm.Prefix{Text: "🔍", Style: pterm.Info.Prefix.Style}).
			Printfln("no files matched %s", report.Pattern)
		return
	}

	if p.detailed {
		for _, res := range report.Results {
			fmt.Fprintln(p.w, FormatResult(res))
		}
		fmt.Fprintln(p.w)
	}

	copied, failed := report.Counts()
	created := 0
	for _, res := range report.Results {
		if StatusOf(res) == StatusCreated {
			created++
		}
	}

	if copied > 0 {
		pterm.Success.WithWriter(p.w).WithPrefix(pterm.Prefix{Text: "✅", Style: pterm.Success.Prefix.Style}).
			Printfln("%s copied, %d created, %d overwritten", plural(copied, "file"), created, copied-created)
	}
	if failed > 0 {
		pterm.Error.WithWriter(p.w).WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.Error.Prefix.Style}).
			Printfln("%s failed", plural(failed, "file"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
