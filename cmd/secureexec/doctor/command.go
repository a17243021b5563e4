// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/secureexec/cmd/secureexec/cli"
	"github.com/bureau-foundation/secureexec/cmd/secureexec/cli/doctor"
)

type commandParams struct {
	cli.Verbosity
	cli.OutputFormat
}

// Command returns the "secureexec doctor" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "doctor",
		Summary: "Explain the secure-execution answer for this process",
		Description: `Run diagnostic checks on the secure-execution answer: what the platform
reported, which primitive produced it, whether it agrees with the process
credentials, and whether the cached answer stays stable across queries.

Exits 1 if any check fails. Warnings do not affect the exit code.`,
		Usage: "secureexec doctor [flags]",
		Examples: []cli.Example{
			{
				Description: "Run all checks",
				Command:     "secureexec doctor",
			},
			{
				Description: "Machine-readable output",
				Command:     "secureexec doctor --format json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if _, err := cli.ParseFormat(params.Format); err != nil {
				return err
			}

			gathered := gatherFacts()
			logger.Debug("gathered facts",
				"required", gathered.required,
				"family", gathered.family,
				"has_identity", gathered.hasIdentity,
			)
			results := runChecks(gathered)

			if done, err := params.Emit(os.Stdout, doctor.BuildJSON(results)); done {
				if err != nil {
					return err
				}
				if doctor.Failed(results) {
					return &cli.ExitError{Code: 1}
				}
				return nil
			}
			return doctor.PrintChecklist(os.Stdout, results, cli.NewStyler(os.Stdout))
		},
	}
}
