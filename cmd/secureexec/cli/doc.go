// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the secureexec
// binary.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a parameter struct whose
// tagged fields become pflag flags ([BindFlags]), and a Run function
// that receives a context and a structured logger. Commands are
// assembled into a tree in cmd/secureexec/commands and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing,
// and help output with examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3).
//
// Output helpers:
//
//   - [OutputFormat] adds --format (text, json, yaml, cbor) to a
//     params struct and writes machine-readable output.
//   - [Styler] colors text output with lipgloss when stdout is a
//     terminal and leaves it plain otherwise.
//   - [NewCommandLogger] writes slog output to stderr, as text on a
//     terminal and JSON when piped.
//
// [ExitError] lets a command end with a chosen exit code without the
// framework printing an extra error line.
package cli
