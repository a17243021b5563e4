// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor implements "secureexec doctor", which explains the
// secure-execution answer for the current process: what the platform
// reported, which primitive produced it, whether it is consistent with
// the process credentials, and whether the cached answer is stable.
package doctor
