// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secureexec

import (
	"sync"
	"sync/atomic"
	"testing"
)

// countingCache returns a cache whose resolver answers value and counts
// its invocations.
func countingCache(value bool) (*cache, *atomic.Int64) {
	var calls atomic.Int64
	return &cache{
		resolve: func() bool {
			calls.Add(1)
			return value
		},
	}, &calls
}

func TestCacheStartsUnresolved(t *testing.T) {
	c, calls := countingCache(true)

	if status := c.status(); status != StatusUnresolved {
		t.Errorf("status() = %v, want %v", status, StatusUnresolved)
	}
	if _, ok := c.cached(); ok {
		t.Error("cached() reported a value before the first query")
	}
	if calls.Load() != 0 {
		t.Errorf("resolver called %d times before the first query, want 0", calls.Load())
	}
}

func TestCacheResolvesOnce(t *testing.T) {
	for _, value := range []bool{false, true} {
		c, calls := countingCache(value)

		for i := range 100 {
			if got := c.required(); got != value {
				t.Fatalf("required() call %d = %v, want %v", i, got, value)
			}
		}
		if calls.Load() != 1 {
			t.Errorf("resolver(%v) called %d times over 100 queries, want 1", value, calls.Load())
		}
	}
}

func TestCacheFalseSkipsSecondQuery(t *testing.T) {
	c, calls := countingCache(false)

	if c.required() {
		t.Fatal("first required() = true, want false")
	}
	if c.required() {
		t.Fatal("second required() = true, want false")
	}
	if calls.Load() != 1 {
		t.Errorf("resolver called %d times, want 1", calls.Load())
	}
}

func TestCacheStateTransitions(t *testing.T) {
	tests := []struct {
		value bool
		want  Status
	}{
		{value: false, want: StatusFalse},
		{value: true, want: StatusTrue},
	}
	for _, test := range tests {
		c, _ := countingCache(test.value)
		c.required()

		if status := c.status(); status != test.want {
			t.Errorf("status() after resolving %v = %v, want %v", test.value, status, test.want)
		}
		required, ok := c.cached()
		if !ok || required != test.value {
			t.Errorf("cached() = (%v, %v), want (%v, true)", required, ok, test.value)
		}
	}
}

func TestCacheConcurrentFirstCallers(t *testing.T) {
	const callers = 64

	for _, value := range []bool{false, true} {
		c, calls := countingCache(value)

		var (
			start   sync.WaitGroup
			done    sync.WaitGroup
			results [callers]bool
		)
		start.Add(1)
		done.Add(callers)
		for i := range callers {
			go func() {
				defer done.Done()
				start.Wait()
				results[i] = c.required()
			}()
		}
		start.Done()
		done.Wait()

		for i, got := range results {
			if got != value {
				t.Errorf("caller %d got %v, want %v", i, got, value)
			}
		}
		if n := calls.Load(); n < 1 || n > callers {
			t.Errorf("resolver called %d times by %d racing callers, want between 1 and %d", n, callers, callers)
		}

		// The race is over: further queries must not reach the resolver.
		before := calls.Load()
		for range 1000 {
			c.required()
		}
		if after := calls.Load(); after != before {
			t.Errorf("resolver called %d more times after resolution, want 0", after-before)
		}
	}
}

func TestRequiredIsStable(t *testing.T) {
	first := Required()
	for i := range 100 {
		if got := Required(); got != first {
			t.Fatalf("Required() call %d = %v, first call returned %v", i, got, first)
		}
	}

	if want := statusOf(first); State() != want {
		t.Errorf("State() = %v, want %v", State(), want)
	}

	cached, ok := Cached()
	if !ok {
		t.Fatal("Cached() reported no value after Required()")
	}
	if cached != first {
		t.Errorf("Cached() = %v, Required() = %v", cached, first)
	}
}

func TestRequiredMatchesResolver(t *testing.T) {
	if got, want := Required(), resolve(); got != want {
		t.Errorf("Required() = %v, resolve() = %v", got, want)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusUnresolved, "unresolved"},
		{StatusFalse, "false"},
		{StatusTrue, "true"},
		{Status(7), "invalid"},
	}
	for _, test := range tests {
		if got := test.status.String(); got != test.want {
			t.Errorf("Status(%d).String() = %q, want %q", uint32(test.status), got, test.want)
		}
		text, err := test.status.MarshalText()
		if err != nil {
			t.Errorf("Status(%d).MarshalText() error: %v", uint32(test.status), err)
		}
		if string(text) != test.want {
			t.Errorf("Status(%d).MarshalText() = %q, want %q", uint32(test.status), text, test.want)
		}
	}
}

func TestStatusResolved(t *testing.T) {
	if StatusUnresolved.Resolved() {
		t.Error("StatusUnresolved.Resolved() = true")
	}
	if !StatusFalse.Resolved() || !StatusTrue.Resolved() {
		t.Error("resolved statuses must report Resolved() = true")
	}
	if statusOf(true) != StatusTrue || statusOf(false) != StatusFalse {
		t.Error("statusOf does not map booleans to their statuses")
	}
}

func TestFamilyString(t *testing.T) {
	tests := []struct {
		family  Family
		want    string
		queries bool
	}{
		{FamilyOther, "other", false},
		{FamilyPOSIXDefault, "posix-default", false},
		{FamilyIssetugid, "issetugid", true},
		{FamilyAuxv, "auxv", true},
		{Family(42), "unknown", false},
	}
	for _, test := range tests {
		if got := test.family.String(); got != test.want {
			t.Errorf("Family(%d).String() = %q, want %q", test.family, got, test.want)
		}
		if got := test.family.Queries(); got != test.queries {
			t.Errorf("Family(%d).Queries() = %v, want %v", test.family, got, test.queries)
		}
	}
}

func TestMechanismNamed(t *testing.T) {
	if Mechanism == "" {
		t.Error("Mechanism is empty")
	}
	if PlatformFamily() != family {
		t.Errorf("PlatformFamily() = %v, want %v", PlatformFamily(), family)
	}
}
