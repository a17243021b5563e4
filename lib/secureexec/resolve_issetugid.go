// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package secureexec

import "golang.org/x/sys/unix"

const family = FamilyIssetugid

// Mechanism names the primitive compiled into this binary.
const Mechanism = "issetugid(2)"

// resolve asks the kernel whether the process is tainted. On darwin and
// FreeBSD a process also becomes tainted by changing its IDs after
// start; on OpenBSD only exec decides. Both define the call as the
// answer to this question.
func resolve() bool {
	return unix.Issetugid()
}
