// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/secureexec/cmd/secureexec/cli"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		result Result
		want   Status
	}{
		{Pass("check", "ok"), StatusPass},
		{Fail("check", "broken", "look here"), StatusFail},
		{Warn("check", "heads up"), StatusWarn},
		{Skip("check", "not applicable"), StatusSkip},
	}
	for _, test := range tests {
		if test.result.Status != test.want {
			t.Errorf("status = %q, want %q", test.result.Status, test.want)
		}
		if test.result.Name != "check" {
			t.Errorf("name = %q, want %q", test.result.Name, "check")
		}
	}
	if hint := Fail("check", "broken", "look here").Hint; hint != "look here" {
		t.Errorf("Fail() hint = %q, want %q", hint, "look here")
	}
}

func TestBuildJSON(t *testing.T) {
	output := BuildJSON([]Result{Pass("a", "ok"), Warn("b", "meh")})
	if !output.OK {
		t.Error("BuildJSON() should be OK when nothing failed")
	}

	output = BuildJSON([]Result{Pass("a", "ok"), Fail("b", "broken", "")})
	if output.OK {
		t.Error("BuildJSON() should not be OK when a check failed")
	}
	if len(output.Checks) != 2 {
		t.Errorf("BuildJSON() checks = %d, want 2", len(output.Checks))
	}

	if empty := BuildJSON(nil); empty.Checks == nil || !empty.OK {
		t.Errorf("BuildJSON(nil) = %+v, want empty checks and OK", empty)
	}
}

func TestPrintChecklistAllPassed(t *testing.T) {
	var buffer bytes.Buffer
	styler := cli.PlainStyler()

	err := PrintChecklist(&buffer, []Result{Pass("secure execution", "not required"), Skip("credentials", "n/a")}, styler)
	if err != nil {
		t.Fatalf("PrintChecklist() error: %v", err)
	}
	output := buffer.String()
	for _, want := range []string{"[PASS]  secure execution", "[SKIP]  credentials", "All checks passed."} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestPrintChecklistFailure(t *testing.T) {
	var buffer bytes.Buffer
	styler := cli.PlainStyler()

	err := PrintChecklist(&buffer, []Result{Fail("credentials", "ids differ", "check the binary mode")}, styler)

	var exitError *cli.ExitError
	if !errors.As(err, &exitError) || exitError.Code != 1 {
		t.Fatalf("PrintChecklist() error = %v, want ExitError{Code: 1}", err)
	}
	output := buffer.String()
	for _, want := range []string{"[FAIL]  credentials", "hint: check the binary mode", "Some checks failed."} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
