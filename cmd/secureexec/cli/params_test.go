// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_Types(t *testing.T) {
	var params struct {
		Label  string   `flag:"label" default:"x"`
		Strict bool     `flag:"strict" default:"true"`
		Limit  int      `flag:"limit,l"`
		Tags   []string `flag:"tag" default:"a,b"`
		Hidden string
	}

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&params, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if params.Label != "x" || !params.Strict || params.Limit != 0 {
		t.Errorf("defaults not applied: %+v", params)
	}
	if strings.Join(params.Tags, ",") != "a,b" {
		t.Errorf("Tags default = %v, want [a b]", params.Tags)
	}
	if flagSet.Lookup("hidden") != nil {
		t.Error("untagged field bound as a flag")
	}

	if err := flagSet.Parse([]string{"--strict=false", "-l", "9", "--tag", "c"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if params.Strict || params.Limit != 9 || strings.Join(params.Tags, ",") != "c" {
		t.Errorf("parsed values wrong: %+v", params)
	}
}

func TestBindFlags_EmbeddedStructs(t *testing.T) {
	var params struct {
		Verbosity
		OutputFormat
	}

	flagSet := FlagsFromParams("test", &params)
	for _, name := range []string{"verbose", "format"} {
		if flagSet.Lookup(name) == nil {
			t.Errorf("embedded flag --%s not bound", name)
		}
	}
	if params.Format != "text" {
		t.Errorf("Format default = %q, want text", params.Format)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)

	var notPointer struct{}
	if err := BindFlags(notPointer, flagSet); err == nil {
		t.Error("BindFlags(non-pointer) should fail")
	}

	var badDefault struct {
		Enabled bool `flag:"enabled" default:"maybe"`
	}
	if err := BindFlags(&badDefault, flagSet); err == nil {
		t.Error("BindFlags with unparseable bool default should fail")
	}

	var unsupported struct {
		Ratio float32 `flag:"ratio"`
	}
	if err := BindFlags(&unsupported, flagSet); err == nil {
		t.Error("BindFlags with unsupported type should fail")
	}
}
