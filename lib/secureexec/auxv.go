// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || solaris

package secureexec

import "golang.org/x/sys/unix"

// processAuxv returns the auxiliary vector the Go runtime recorded at
// process start. An unavailable vector is reported as empty, which
// reads as "every entry absent", the same answer getauxval gives for a
// missing key.
func processAuxv() [][2]uintptr {
	vector, err := unix.Auxv()
	if err != nil {
		return nil
	}
	return vector
}

// auxvValue returns the value stored under key, or 0 and false if the
// vector has no such entry.
func auxvValue(vector [][2]uintptr, key uintptr) (uintptr, bool) {
	for _, entry := range vector {
		if entry[0] == key {
			return entry[1], true
		}
	}
	return 0, false
}
