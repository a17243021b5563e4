// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/secureexec/cmd/secureexec/cli"
	"github.com/bureau-foundation/secureexec/lib/secureexec"
)

type commandParams struct {
	cli.Verbosity
	cli.OutputFormat
	Check bool `json:"-" yaml:"-" flag:"check,c" desc:"print nothing; exit 1 if secure execution is required, 0 if not"`
}

// Command returns the "secureexec status" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "status",
		Summary: "Report whether this process requires secure execution",
		Description: `Report whether the process requires secure execution: whether its
environment cannot be trusted because it runs with privileges its invoker
does not hold (set-user-ID or set-group-ID exec, file capabilities, a
security module decision, or an ID change on BSD-model systems).

Install the binary set-user-ID to see the answer change.`,
		Usage: "secureexec status [flags]",
		Examples: []cli.Example{
			{
				Description: "Human-readable status",
				Command:     "secureexec status",
			},
			{
				Description: "Guard a shell script on the answer",
				Command:     "secureexec status --check || echo 'environment not trusted'",
			},
			{
				Description: "Machine-readable output",
				Command:     "secureexec status --format json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return run(os.Stdout, params, cli.NewStyler(os.Stdout), logger)
		},
	}
}

func run(w io.Writer, params commandParams, styler *cli.Styler, logger *slog.Logger) error {
	if _, err := cli.ParseFormat(params.Format); err != nil {
		return err
	}

	logger.Debug("querying secure-execution status",
		"state", secureexec.State(),
		"family", secureexec.PlatformFamily(),
		"mechanism", secureexec.Mechanism,
	)
	report := Collect()
	logger.Debug("secure-execution status resolved", "required", report.Required)

	if params.Check {
		if report.Required {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	if done, err := params.Emit(w, report); done {
		return err
	}

	printText(w, report, styler)
	return nil
}

func printText(w io.Writer, report Report, styler *cli.Styler) {
	if report.Required {
		fmt.Fprintf(w, "secure execution: %s\n", styler.Warning("required"))
	} else {
		fmt.Fprintf(w, "secure execution: %s\n", styler.Good("not required"))
	}

	mechanism := report.Mechanism
	if !report.Measured {
		mechanism += " " + styler.Faint("(platform default, not measured)")
	}
	fmt.Fprintf(w, "mechanism:        %s\n", mechanism)
	fmt.Fprintf(w, "family:           %s\n", report.Family)
	fmt.Fprintf(w, "platform:         %s\n", report.Platform)
}
