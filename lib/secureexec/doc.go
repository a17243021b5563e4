// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secureexec reports whether the running process requires
// "secure execution": whether its environment and invoking context
// cannot be fully trusted because it was started as a set-user-ID or
// set-group-ID binary, gained capabilities at exec, was flagged by a
// Linux Security Module, or (on BSD-model systems) changed its user or
// group IDs since it began executing.
//
// General-purpose code that reads environment variables or caller
// supplied paths consults [Required] before trusting them. This is the
// same decision glibc's secure_getenv(3) makes, and the reason
// OpenBSD's issetugid(2) exists.
//
// # Platform primitives
//
// The primitive is selected at build time by GOOS:
//
//   - linux, android: the AT_SECURE entry of the auxiliary vector the
//     kernel passed at exec (see getauxval(3)). Non-zero means secure.
//   - solaris, illumos: the AF_SUN_SETUGID bit of the AT_SUN_AUXFLAGS
//     auxiliary vector entry, which is what issetugid(2) reports there.
//   - darwin, ios, dragonfly, freebsd, netbsd, openbsd: issetugid(2).
//   - Any other unix (aix, hurd): no primitive exists, so the answer is
//     always true.
//   - Everything else (windows, plan9, js, wasip1): always false.
//
// [PlatformFamily] and [Mechanism] describe the choice compiled into
// the current binary.
//
// # Caching
//
// The first call to [Required] performs the query and publishes the
// answer into a process-wide atomic cell; every later call returns the
// cached answer without touching the kernel. Concurrent first callers
// may each run the query, but they all compute the same value, so no
// lock is taken.
//
// The answer is frozen for the life of the process. On FreeBSD and
// systems sharing its model, issetugid can start returning true after
// the process changes its IDs; a process that needs to observe that
// transition must not rely on this package.
package secureexec
