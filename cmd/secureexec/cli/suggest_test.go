// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"status", "status", 0},
		{"status", "statsu", 2},
		{"doctor", "docter", 1},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand_Threshold(t *testing.T) {
	commands := []*Command{{Name: "status"}, {Name: "doctor"}, {Name: "version"}}

	if got := suggestCommand("verison", commands); got != "version" {
		t.Errorf("suggestCommand(verison) = %q, want version", got)
	}
	if got := suggestCommand("completely-different", commands); got != "" {
		t.Errorf("suggestCommand(completely-different) = %q, want no suggestion", got)
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.Bool("check", false, "")
	flagSet.String("format", "text", "")

	if got := suggestFlag([]string{"--chekc"}, flagSet); got != "--check" {
		t.Errorf("suggestFlag(--chekc) = %q, want --check", got)
	}
	if got := suggestFlag([]string{"--check", "--fromat=json"}, flagSet); got != "--format" {
		t.Errorf("suggestFlag(--fromat=json) = %q, want --format", got)
	}
	if got := suggestFlag([]string{"--zzzzzzzz"}, flagSet); got != "" {
		t.Errorf("suggestFlag(--zzzzzzzz) = %q, want no suggestion", got)
	}
}
