// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/secureexec/lib/codec"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat validates a --format value.
func ParseFormat(value string) (Format, error) {
	switch format := Format(value); format {
	case FormatText, FormatJSON, FormatYAML, FormatCBOR:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml, or cbor)", value)
	}
}

// OutputFormat is an embeddable params struct adding --format.
//
//	type statusParams struct {
//	    cli.OutputFormat
//	}
//
//	// In Run:
//	if done, err := params.Emit(os.Stdout, report); done {
//	    return err
//	}
//	// ... text formatting ...
type OutputFormat struct {
	Format string `json:"-" yaml:"-" flag:"format,o" default:"text" desc:"output format: text, json, yaml, or cbor"`
}

// Emit writes result to w in the selected machine-readable format.
// Returns (true, err) when it handled the output and (false, nil) when
// the format is text and the caller should format the output itself.
// An invalid --format value is reported as handled with an error.
//
// Nil slices are normalized to empty slices first, so JSON output is
// [] rather than null.
func (o *OutputFormat) Emit(w io.Writer, result any) (bool, error) {
	format, err := ParseFormat(o.Format)
	if err != nil {
		return true, err
	}
	if format == FormatText {
		return false, nil
	}
	return true, Write(w, format, normalizeNilSlice(result))
}

// Write encodes value to w in format. FormatText is rejected; text
// rendering belongs to each command.
func Write(w io.Writer, format Format, value any) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return encoder.Close()
	case FormatCBOR:
		if err := codec.NewEncoder(w).Encode(value); err != nil {
			return fmt.Errorf("encoding cbor: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q has no structured encoding", format)
	}
}

// normalizeNilSlice returns an empty slice of the same type if value is
// a nil slice. Returns value unchanged for all other types.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}
