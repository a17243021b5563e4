// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secureexec

// Family classifies platforms by the primitive used to answer the
// secure-execution question. The family of a binary is fixed when it
// is compiled.
type Family uint8

const (
	// FamilyOther covers platforms with no notion of set-user-ID
	// execution. Secure execution is never required.
	FamilyOther Family = iota

	// FamilyPOSIXDefault covers unix platforms that expose no
	// primitive. Secure execution is always assumed.
	FamilyPOSIXDefault

	// FamilyIssetugid covers platforms that answer through the
	// issetugid(2) system call or its libc equivalent.
	FamilyIssetugid

	// FamilyAuxv covers platforms where the kernel supplies the
	// answer in the auxiliary vector at exec.
	FamilyAuxv
)

// String returns the short name used in reports.
func (f Family) String() string {
	switch f {
	case FamilyOther:
		return "other"
	case FamilyPOSIXDefault:
		return "posix-default"
	case FamilyIssetugid:
		return "issetugid"
	case FamilyAuxv:
		return "auxv"
	default:
		return "unknown"
	}
}

// MarshalText encodes the family as its String form.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Queries reports whether platforms of this family consult the kernel.
// The two fallback families answer with a constant.
func (f Family) Queries() bool {
	return f == FamilyAuxv || f == FamilyIssetugid
}

// PlatformFamily returns the family compiled into this binary.
func PlatformFamily() Family {
	return family
}
