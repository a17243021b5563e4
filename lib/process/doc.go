// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the entrypoint error handler for the
// secureexec binary: errors that occur before the structured logger
// exists are written raw to stderr and end the process.
package process
