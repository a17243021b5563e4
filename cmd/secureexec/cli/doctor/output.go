// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/bureau-foundation/secureexec/cmd/secureexec/cli"
)

// PrintChecklist prints check results as a human-readable checklist and
// returns an [cli.ExitError] with code 1 if any check failed.
func PrintChecklist(w io.Writer, results []Result, styler *cli.Styler) error {
	for _, result := range results {
		label := fmt.Sprintf("[%-4s]", strings.ToUpper(string(result.Status)))
		fmt.Fprintf(w, "%s  %-24s  %s\n", statusStyle(styler, result.Status)(label), result.Name, result.Message)
		if result.Status == StatusFail && result.Hint != "" {
			fmt.Fprintf(w, "        %-24s  %s\n", "", styler.Faint("hint: "+result.Hint))
		}
	}

	fmt.Fprintln(w)

	if Failed(results) {
		fmt.Fprintln(w, styler.Bad("Some checks failed."))
		return &cli.ExitError{Code: 1}
	}
	fmt.Fprintln(w, styler.Good("All checks passed."))
	return nil
}

func statusStyle(styler *cli.Styler, status Status) func(string) string {
	switch status {
	case StatusPass:
		return styler.Good
	case StatusWarn:
		return styler.Warning
	case StatusFail:
		return styler.Bad
	default:
		return styler.Faint
	}
}
