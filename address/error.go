// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"errors"
)

// ErrorKind identifies a kind of address error.  It is a closed set: every
// failure DecodeAddress can report maps to exactly one kind.
type ErrorKind int

// These constants are used to identify a specific Error.  The associated
// description of each kind is a stable string that callers (and remote
// tooling) match on, so the text must never change.
const (
	// ErrInvalidFormat indicates the string could not be claimed by any of
	// the supported address formats.
	ErrInvalidFormat ErrorKind = iota

	// ErrBech32Prefix indicates a string carrying a valid bech32 checksum
	// whose human-readable prefix does not belong to the active network.
	ErrBech32Prefix

	// ErrBech32DataSize indicates a bech32 witness program outside the
	// 2 to 40 byte range.
	ErrBech32DataSize

	// ErrBech32V0DataSize indicates a version 0 bech32 witness program
	// that is not exactly 20 or 32 bytes.
	ErrBech32V0DataSize

	// ErrBech32WitnessVersion indicates a witness version above 16.
	ErrBech32WitnessVersion

	// ErrBech32mUnexpected indicates a version 0 witness address encoded
	// with the bech32m checksum instead of the original bech32 one.
	ErrBech32mUnexpected

	// ErrBech32mRequired indicates a version 1+ witness address encoded
	// with the original bech32 checksum instead of bech32m.
	ErrBech32mRequired

	// ErrBlech32Prefix is the confidential-address mirror of
	// ErrBech32Prefix.
	ErrBlech32Prefix

	// ErrBlech32DataSize is the confidential-address mirror of
	// ErrBech32DataSize.
	ErrBlech32DataSize

	// ErrBlech32V0DataSize is the confidential-address mirror of
	// ErrBech32V0DataSize.
	ErrBlech32V0DataSize

	// ErrBlech32WitnessVersion is the confidential-address mirror of
	// ErrBech32WitnessVersion.
	ErrBlech32WitnessVersion

	// ErrBlech32mUnexpected is the confidential-address mirror of
	// ErrBech32mUnexpected.
	ErrBlech32mUnexpected

	// ErrBlech32mRequired is the confidential-address mirror of
	// ErrBech32mRequired.
	ErrBlech32mRequired

	// ErrBase58Prefix indicates a checksum-valid Base58 string whose
	// version byte does not belong to the active network.
	ErrBase58Prefix

	// numErrorKinds is the maximum error kind number used in tests.
	numErrorKinds
)

// errorKindDescs holds the fixed, user-facing description for each error
// kind.  These strings are a compatibility contract with the node RPC
// interface and must match it byte for byte.
var errorKindDescs = map[ErrorKind]string{
	ErrInvalidFormat:         "Invalid address format",
	ErrBech32Prefix:          "Invalid prefix for Bech32 address",
	ErrBech32DataSize:        "Invalid Bech32 address data size",
	ErrBech32V0DataSize:      "Invalid Bech32 v0 address data size",
	ErrBech32WitnessVersion:  "Invalid Bech32 address witness version",
	ErrBech32mUnexpected:     "Version 0 witness address must use Bech32 checksum",
	ErrBech32mRequired:       "Version 1+ witness address must use Bech32m checksum",
	ErrBlech32Prefix:         "Invalid prefix for Blech32 address",
	ErrBlech32DataSize:       "Invalid Blech32 address data size",
	ErrBlech32V0DataSize:     "Invalid Blech32 v0 address data size",
	ErrBlech32WitnessVersion: "Invalid Blech32 address witness version",
	ErrBlech32mUnexpected:    "Version 0 witness address must use Blech32 checksum",
	ErrBlech32mRequired:      "Version 1+ witness address must use Blech32m checksum",
	ErrBase58Prefix:          "Invalid prefix for Base58-encoded address",
}

// String returns the ErrorKind's fixed description.
func (k ErrorKind) String() string {
	if s, ok := errorKindDescs[k]; ok {
		return s
	}
	return "Unknown ErrorKind"
}

// Error identifies an address decoding error.  It has full support for the
// standard library errors.Is and errors.As methods.
type Error struct {
	// Kind identifies which of the fixed failure classes occurred.
	Kind ErrorKind

	// Description is the fixed, user-facing text for Kind.
	Description string
}

// Error satisfies the error interface and returns the fixed description.
func (e Error) Error() string {
	return e.Description
}

// addressError creates an Error for the given kind with its canonical
// description.
func addressError(kind ErrorKind) Error {
	return Error{Kind: kind, Description: errorKindDescs[kind]}
}

// IsErrorKind returns whether or not the provided error is an address Error
// with the provided kind.
func IsErrorKind(err error, kind ErrorKind) bool {
	var e Error
	return errors.As(err, &e) && e.Kind == kind
}
