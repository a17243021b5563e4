// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secureexec

// atSecure is AT_SECURE from <linux/auxvec.h>. The kernel sets it when
// the executable should be treated securely: real and effective IDs
// differ after a set-user-ID or set-group-ID exec, the binary carried
// file capabilities, or a security module asked for it.
const atSecure = 23

const family = FamilyAuxv

// Mechanism names the primitive compiled into this binary.
const Mechanism = "getauxval(AT_SECURE)"

func resolve() bool {
	return secureFromAuxv(processAuxv())
}

// secureFromAuxv interprets a Linux auxiliary vector.
func secureFromAuxv(vector [][2]uintptr) bool {
	value, _ := auxvValue(vector, atSecure)
	return value != 0
}
