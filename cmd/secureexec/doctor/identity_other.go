// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package doctor

// currentIdentity reports that the platform has no unix credentials.
func currentIdentity() (identity, bool) {
	return identity{}, false
}
