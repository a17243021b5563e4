// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bureau-foundation/secureexec/cmd/secureexec/commands"
	"github.com/bureau-foundation/secureexec/lib/process"
	"github.com/bureau-foundation/secureexec/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before anything else.
	for _, argument := range os.Args[1:] {
		if argument == "--version" {
			fmt.Printf("secureexec %s\n", version.Info())
			return 0
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.Root().Execute(ctx, os.Args[1:]); err != nil {
		// Commands that print their own output return an ExitError
		// carrying the desired code.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			return coder.ExitCode()
		}
		process.Report(os.Stderr, err)
		return 2
	}
	return 0
}
