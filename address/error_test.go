// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type,
// which doubles as the fixed description reported for each failure class.
func TestErrorKindStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidFormat, "Invalid address format"},
		{ErrBech32Prefix, "Invalid prefix for Bech32 address"},
		{ErrBech32DataSize, "Invalid Bech32 address data size"},
		{ErrBech32V0DataSize, "Invalid Bech32 v0 address data size"},
		{ErrBech32WitnessVersion, "Invalid Bech32 address witness version"},
		{ErrBech32mUnexpected, "Version 0 witness address must use Bech32 checksum"},
		{ErrBech32mRequired, "Version 1+ witness address must use Bech32m checksum"},
		{ErrBlech32Prefix, "Invalid prefix for Blech32 address"},
		{ErrBlech32DataSize, "Invalid Blech32 address data size"},
		{ErrBlech32V0DataSize, "Invalid Blech32 v0 address data size"},
		{ErrBlech32WitnessVersion, "Invalid Blech32 address witness version"},
		{ErrBlech32mUnexpected, "Version 0 witness address must use Blech32 checksum"},
		{ErrBlech32mRequired, "Version 1+ witness address must use Blech32m checksum"},
		{ErrBase58Prefix, "Invalid prefix for Base58-encoded address"},
		{numErrorKinds, "Unknown ErrorKind"},
	}

	// Detect additional error kinds that don't have an entry in the tests.
	if len(tests)-1 != int(numErrorKinds) {
		t.Errorf("it appears an error kind was added without adding an " +
			"associated stringer test")
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	t.Parallel()

	for kind := ErrInvalidFormat; kind < numErrorKinds; kind++ {
		err := addressError(kind)
		if err.Error() != kind.String() {
			t.Errorf("kind %d: error text %q does not match "+
				"description %q", kind, err.Error(), kind.String())
		}
	}
}

// TestIsErrorKind ensures kind matching works through wrapped errors and
// rejects both foreign errors and mismatched kinds.
func TestIsErrorKind(t *testing.T) {
	t.Parallel()

	err := addressError(ErrBech32Prefix)
	if !IsErrorKind(err, ErrBech32Prefix) {
		t.Error("expected kind to match")
	}
	if IsErrorKind(err, ErrBlech32Prefix) {
		t.Error("expected mismatched kind to not match")
	}

	wrapped := errors.New("decode: " + err.Error())
	if IsErrorKind(wrapped, ErrBech32Prefix) {
		t.Error("expected foreign error to not match")
	}
}
