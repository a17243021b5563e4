// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secureexec

import "sync/atomic"

// processStatus is the process-wide cell. It is reachable only through
// Required and Cached.
var processStatus = cache{resolve: resolve}

// Required reports whether the running process requires secure
// execution. The platform is queried on the first call only; every
// later call returns the cached answer in constant time.
//
// Required never blocks, never fails, and is safe for concurrent use.
func Required() bool {
	return processStatus.required()
}

// Cached returns the memoized answer without querying the platform.
// ok is false if no call to Required has completed yet.
func Cached() (required bool, ok bool) {
	return processStatus.cached()
}

// State returns the current contents of the process-wide cell:
// StatusUnresolved until the first call to Required completes, then
// StatusFalse or StatusTrue for the rest of the process.
func State() Status {
	return processStatus.status()
}

// cache memoizes the answer of one resolver. The zero state is
// StatusUnresolved, so a cache needs nothing beyond its resolver.
type cache struct {
	state   atomic.Uint32
	resolve func() bool
}

func (c *cache) required() bool {
	switch Status(c.state.Load()) {
	case StatusFalse:
		return false
	case StatusTrue:
		return true
	}

	// Racing first callers may each get here. The resolver reads state
	// that is fixed for the process, so every store writes the same
	// value and the order of stores does not matter.
	required := c.resolve()
	c.state.Store(uint32(statusOf(required)))
	return required
}

func (c *cache) cached() (bool, bool) {
	status := Status(c.state.Load())
	return status == StatusTrue, status.Resolved()
}

// status returns the raw cell contents.
func (c *cache) status() Status {
	return Status(c.state.Load())
}
