// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the CBOR configuration used for machine-readable
// secure-execution reports.
//
// JSON and YAML are the human-inspectable report formats; CBOR is for
// consumers that already speak it (service sockets, on-disk state).
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same report always produces identical bytes.
//
//	data, err := codec.Marshal(report)
//	encoder := codec.NewEncoder(os.Stdout)
//
// Report types carry `json` tags only. fxamacker/cbor reads them as a
// fallback when `cbor` tags are absent, so one tag set names fields in
// every format. Types implementing encoding.TextMarshaler (such as
// secureexec.Status) encode as CBOR text strings.
package codec
