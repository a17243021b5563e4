// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have written its own
// output already.
//
// Used where a non-zero exit is a valid outcome rather than a failure:
// "status --check" exiting 1 because secure execution is required, or
// "doctor" exiting 1 because a check failed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to tell a handled exit from an unexpected error.
func (e *ExitError) ExitCode() int {
	return e.Code
}
