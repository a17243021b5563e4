// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package secureexec

const family = FamilyOther

// Mechanism names the primitive compiled into this binary.
const Mechanism = "none"

func resolve() bool {
	return false
}
