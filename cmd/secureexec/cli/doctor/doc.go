// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor provides the checklist infrastructure behind
// "secureexec doctor".
//
// Each check produces a [Result] with a status and a human-readable
// message. The package provides:
//
//   - Constructors: [Pass], [Fail], [Warn], [Skip]
//   - [PrintChecklist] for human-readable output
//   - [BuildJSON] for machine-readable output
//
// What to check lives in cmd/secureexec/doctor. Checks are read-only:
// nothing the doctor reports can be repaired from inside the process,
// since the secure-execution status is fixed at exec.
package doctor
