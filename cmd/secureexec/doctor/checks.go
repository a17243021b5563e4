// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"fmt"

	"github.com/bureau-foundation/secureexec/cmd/secureexec/cli/doctor"
	"github.com/bureau-foundation/secureexec/lib/secureexec"
)

// stabilityProbes is how many extra queries the memoization check makes.
const stabilityProbes = 16

// facts is everything the checks look at, gathered once so the checks
// themselves are pure.
type facts struct {
	required  bool
	family    secureexec.Family
	mechanism string

	identity    identity
	hasIdentity bool

	// probes are the answers of repeated queries after the first.
	probes []bool
	state  secureexec.Status
}

func gatherFacts() facts {
	gathered := facts{
		required:  secureexec.Required(),
		family:    secureexec.PlatformFamily(),
		mechanism: secureexec.Mechanism,
	}
	gathered.identity, gathered.hasIdentity = currentIdentity()
	for range stabilityProbes {
		gathered.probes = append(gathered.probes, secureexec.Required())
	}
	gathered.state = secureexec.State()
	return gathered
}

func runChecks(gathered facts) []doctor.Result {
	return []doctor.Result{
		checkSecureExecution(gathered),
		checkMechanism(gathered),
		checkCredentials(gathered),
		checkMemoization(gathered),
	}
}

func checkSecureExecution(gathered facts) doctor.Result {
	const name = "secure execution"
	if gathered.required {
		return doctor.Warn(name, "required: environment-supplied configuration will be distrusted")
	}
	return doctor.Pass(name, "not required")
}

func checkMechanism(gathered facts) doctor.Result {
	const name = "resolver mechanism"
	switch gathered.family {
	case secureexec.FamilyPOSIXDefault:
		return doctor.Warn(name, "no primitive on this platform; secure execution is assumed")
	case secureexec.FamilyOther:
		return doctor.Pass(name, "platform has no set-user-ID execution")
	default:
		return doctor.Pass(name, fmt.Sprintf("%s (%s)", gathered.mechanism, gathered.family))
	}
}

func checkCredentials(gathered facts) doctor.Result {
	const name = "credentials"
	if !gathered.hasIdentity {
		return doctor.Skip(name, "platform has no unix credentials")
	}

	id := gathered.identity
	summary := fmt.Sprintf("uid=%d euid=%d gid=%d egid=%d", id.UID, id.EUID, id.GID, id.EGID)

	switch {
	case id.elevated() && gathered.required:
		return doctor.Pass(name, summary+": elevated, secure execution required")
	case id.elevated() && !gathered.required && gathered.family.Queries():
		return doctor.Fail(name, summary+": elevated, but the kernel did not report secure execution",
			"IDs may have been changed after exec without tainting the process; treat the environment as untrusted")
	case id.elevated():
		return doctor.Warn(name, summary+": elevated on a platform without secure execution")
	case gathered.required && gathered.family.Queries():
		return doctor.Pass(name, summary+": IDs match; secure execution comes from capabilities, a security module, or an earlier ID change")
	default:
		return doctor.Pass(name, summary)
	}
}

func checkMemoization(gathered facts) doctor.Result {
	const name = "memoized status"
	for i, probe := range gathered.probes {
		if probe != gathered.required {
			return doctor.Fail(name,
				fmt.Sprintf("query %d returned %v after the first returned %v", i+2, probe, gathered.required),
				"the status cell changed after resolution; this is a bug")
		}
	}
	if !gathered.state.Resolved() {
		return doctor.Fail(name, "cell still unresolved after querying", "this is a bug")
	}
	return doctor.Pass(name, fmt.Sprintf("cached as %s across %d queries", gathered.state, len(gathered.probes)+1))
}
