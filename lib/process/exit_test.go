// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestReportFormat(t *testing.T) {
	var buffer bytes.Buffer
	Report(&buffer, fmt.Errorf("parsing flags: %w", errors.New("unknown flag --x")))

	if got, want := buffer.String(), "error: parsing flags: unknown flag --x\n"; got != want {
		t.Errorf("Report() wrote %q, want %q", got, want)
	}
}
