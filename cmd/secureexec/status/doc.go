// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package status implements "secureexec status", which reports whether
// the process requires secure execution and how that was determined.
package status
