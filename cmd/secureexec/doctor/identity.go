// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

// identity holds the real and effective user and group IDs of the
// process.
type identity struct {
	UID, EUID int
	GID, EGID int
}

// elevated reports whether the effective IDs differ from the real ones,
// the classic set-user-ID or set-group-ID signature.
func (id identity) elevated() bool {
	return id.UID != id.EUID || id.GID != id.EGID
}
