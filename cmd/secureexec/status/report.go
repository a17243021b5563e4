// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"github.com/bureau-foundation/secureexec/lib/secureexec"
	"github.com/bureau-foundation/secureexec/lib/version"
)

// Report is the structured form of the status output.
type Report struct {
	Required  bool              `json:"required"  yaml:"required"`
	State     secureexec.Status `json:"state"     yaml:"state"`
	Family    secureexec.Family `json:"family"    yaml:"family"`
	Mechanism string            `json:"mechanism" yaml:"mechanism"`

	// Measured is false when the platform has no primitive and the
	// answer is a fixed assumption.
	Measured bool `json:"measured" yaml:"measured"`

	Platform string `json:"platform" yaml:"platform"`
	Version  string `json:"version"  yaml:"version"`
}

// Collect queries the process status and assembles a Report.
func Collect() Report {
	required := secureexec.Required()
	family := secureexec.PlatformFamily()
	return Report{
		Required:  required,
		State:     secureexec.State(),
		Family:    family,
		Mechanism: secureexec.Mechanism,
		Measured:  family.Queries(),
		Platform:  version.Platform(),
		Version:   version.Short(),
	}
}
