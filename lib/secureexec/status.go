// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secureexec

// Status is the tri-state value held by the secure-execution cache.
// The zero value is StatusUnresolved so that an uninitialized cell
// means "not yet queried".
type Status uint32

const (
	// StatusUnresolved means the platform has not been queried yet.
	StatusUnresolved Status = iota

	// StatusFalse means secure execution is not required.
	StatusFalse

	// StatusTrue means secure execution is required.
	StatusTrue
)

// statusOf converts a resolved boolean into its Status.
func statusOf(required bool) Status {
	if required {
		return StatusTrue
	}
	return StatusFalse
}

// Resolved reports whether s holds an answer.
func (s Status) Resolved() bool {
	return s == StatusFalse || s == StatusTrue
}

// String returns "unresolved", "false", or "true".
func (s Status) String() string {
	switch s {
	case StatusUnresolved:
		return "unresolved"
	case StatusFalse:
		return "false"
	case StatusTrue:
		return "true"
	default:
		return "invalid"
	}
}

// MarshalText encodes the status as its String form, so reports carry
// "true"/"false"/"unresolved" in JSON, YAML, and CBOR alike.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
