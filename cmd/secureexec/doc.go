// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Secureexec reports whether a process requires secure execution and
// explains the answer. It is the command-line face of lib/secureexec:
// install it set-user-ID, set-group-ID, or with file capabilities to see
// what a privileged process observes.
//
// Exit codes:
//
//	0  success (for "status --check": secure execution not required)
//	1  "status --check": secure execution required; "doctor": a check failed
//	2  error (bad arguments, unknown command, output failure)
package main
