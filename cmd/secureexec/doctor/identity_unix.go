// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package doctor

import "golang.org/x/sys/unix"

// currentIdentity returns the credentials of the running process.
func currentIdentity() (identity, bool) {
	return identity{
		UID:  unix.Getuid(),
		EUID: unix.Geteuid(),
		GID:  unix.Getgid(),
		EGID: unix.Getegid(),
	}, true
}
