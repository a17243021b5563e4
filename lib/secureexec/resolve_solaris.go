// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secureexec

// Values from <sys/auxv.h>. The kernel sets AF_SUN_SETUGID in the
// AT_SUN_AUXFLAGS entry when the process was exec'd with set-user-ID
// or set-group-ID privileges; libc's issetugid reports this bit.
const (
	atSunAuxflags = 2017
	afSunSetugid  = 0x00000001
)

const family = FamilyIssetugid

// Mechanism names the primitive compiled into this binary.
const Mechanism = "issetugid(2) via AT_SUN_AUXFLAGS"

func resolve() bool {
	return setugidFromAuxv(processAuxv())
}

// setugidFromAuxv interprets a Solaris or illumos auxiliary vector.
func setugidFromAuxv(vector [][2]uintptr) bool {
	flags, _ := auxvValue(vector, atSunAuxflags)
	return flags&afSunSetugid != 0
}
