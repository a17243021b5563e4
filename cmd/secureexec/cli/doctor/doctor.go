// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string `json:"name"           yaml:"name"`
	Status  Status `json:"status"         yaml:"status"`
	Message string `json:"message"        yaml:"message"`
	Hint    string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result. hint tells the operator what to
// look at; it may be empty.
func Fail(name, message, hint string) Result {
	return Result{Name: name, Status: StatusFail, Message: message, Hint: hint}
}

// Warn creates a warning check result. Warnings do not cause the doctor
// command to exit with a non-zero status.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result, used when the check does not
// apply to this platform.
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// JSONOutput is the structured output of the doctor command.
type JSONOutput struct {
	Checks []Result `json:"checks" yaml:"checks"`
	OK     bool     `json:"ok"     yaml:"ok"`
}

// Failed reports whether any result failed.
func Failed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}

// BuildJSON builds the structured output from results.
func BuildJSON(results []Result) JSONOutput {
	if results == nil {
		results = []Result{}
	}
	return JSONOutput{
		Checks: results,
		OK:     !Failed(results),
	}
}
