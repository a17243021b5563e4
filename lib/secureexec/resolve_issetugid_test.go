// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package secureexec

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestResolveMatchesIssetugid(t *testing.T) {
	if got, want := resolve(), unix.Issetugid(); got != want {
		t.Errorf("resolve() = %v, issetugid() = %v", got, want)
	}
	if family != FamilyIssetugid {
		t.Errorf("family = %v, want %v", family, FamilyIssetugid)
	}
}
