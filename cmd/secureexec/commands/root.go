// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/secureexec/cmd/secureexec/cli"
	"github.com/bureau-foundation/secureexec/cmd/secureexec/doctor"
	"github.com/bureau-foundation/secureexec/cmd/secureexec/status"
	"github.com/bureau-foundation/secureexec/lib/version"
)

// Root returns the top-level secureexec command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "secureexec",
		Summary: "Secure-execution status of the running process",
		Description: `secureexec reports whether this process requires secure execution,
the condition under which libraries must not trust environment variables
or caller-supplied paths (glibc's secure_getenv, OpenBSD's issetugid).`,
		Subcommands: []*cli.Command{
			status.Command(),
			doctor.Command(),
			versionCommand(),
		},
	}
}

type versionParams struct {
	Full bool `flag:"full" desc:"include Go version and platform"`
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "secureexec version [--full]",
		Params:  func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return printVersion(os.Stdout, params)
		},
	}
}

func printVersion(w io.Writer, params versionParams) error {
	if params.Full {
		_, err := fmt.Fprintf(w, "secureexec %s\n", version.Full())
		return err
	}
	_, err := fmt.Fprintf(w, "secureexec %s\n", version.Info())
	return err
}
