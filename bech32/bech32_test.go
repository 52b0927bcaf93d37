// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"bytes"
	"strings"
	"testing"
)

// TestBech32 tests whether decoding and re-encoding the valid BIP-173 test
// vectors works and if decoding invalid test vectors fails for the correct
// reason.
func TestBech32(t *testing.T) {
	tests := []struct {
		str           string
		expectedError error
	}{
		{"A12UEL5L", nil},
		{"a12uel5l", nil},
		{"an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs", nil},
		{"abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw", nil},
		{"split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w", nil},
		{"?1ezyfcl", nil},

		// Invalid character in HRP (space).
		{" 1nwldj5", ErrInvalidCharacter(' ')},
		// Invalid character in HRP (DEL).
		{"\x7f1axkwrx", ErrInvalidCharacter(0x7f)},
		// Too long.
		{"an84characterslonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1569pvx", ErrInvalidLength(91)},
		// No separator.
		{"pzry9x0s0muk", ErrInvalidSeparatorIndex(-1)},
		// Empty HRP.
		{"1pzry9x0s0muk", ErrInvalidSeparatorIndex(0)},
		// Invalid data character.
		{"x1b4n0q5v", ErrNonCharsetChar('b')},
		// Too short checksum.
		{"li1dgmt3", ErrInvalidSeparatorIndex(2)},
		// Invalid checksum.
		{"A1G7SGD8", ErrInvalidChecksum{"2uel5l", "lqfn3a", "g7sgd8"}},
		// Too short overall.
		{"10a06t8", ErrInvalidLength(7)},
		// Empty HRP, again.
		{"1qzzfhee", ErrInvalidSeparatorIndex(0)},
		// Mixed case.
		{"A12uEL5L", ErrMixedCase{}},
	}

	for _, test := range tests {
		str := test.str
		hrp, decoded, err := Decode(str)
		if test.expectedError != err {
			t.Errorf("%s: expected decoding error %v "+
				"instead got %v", str, test.expectedError, err)
			continue
		}

		if err != nil {
			// End test case here if a decoding error was expected.
			continue
		}

		// Check that it encodes to the same string, using bech32 v0.
		encoded, err := Encode(hrp, decoded)
		if err != nil {
			t.Errorf("encoding failed: %v", err)
		}

		if encoded != strings.ToLower(str) {
			t.Errorf("expected data to encode to %v, but got %v",
				str, encoded)
		}

		// Flip a bit in the string and make sure it is caught.
		pos := strings.LastIndexAny(str, "1")
		flipped := str[:pos+1] + string((str[pos+1] ^ 1)) + str[pos+2:]
		_, _, err = Decode(flipped)
		if err == nil {
			t.Error("expected decoding to fail")
		}
	}
}

// TestBech32M tests that the BIP-350 bech32m test vectors decode under the
// bech32m checksum constant and re-encode byte for byte with EncodeM.
func TestBech32M(t *testing.T) {
	tests := []struct {
		str           string
		expectedError error
	}{
		{"A1LQFN3A", nil},
		{"a1lqfn3a", nil},
		{"an83characterlonghumanreadablepartthatcontainsthetheexcludedcharactersbioandnumber11sg7hg6", nil},
		{"abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx", nil},
		{"split1checkupstagehandshakeupstreamerranterredcaperredlc445v", nil},
		{"?1v759aa", nil},
	}

	for _, test := range tests {
		str := test.str
		hrp, decoded, version, err := DecodeGeneric(str)
		if test.expectedError != err {
			t.Errorf("%s: expected decoding error %v "+
				"instead got %v", str, test.expectedError, err)
			continue
		}

		if err != nil {
			continue
		}

		if version != VersionM {
			t.Errorf("%s: expected checksum version %v, got %v",
				str, VersionM, version)
			continue
		}

		encoded, err := EncodeM(hrp, decoded)
		if err != nil {
			t.Errorf("encoding failed: %v", err)
		}

		if encoded != strings.ToLower(str) {
			t.Errorf("expected data to encode to %v, but got %v",
				str, encoded)
		}
	}
}

// TestMixedCaseEncode ensures that the encoder lowercases the HRP before
// computing the checksum so a mixed case HRP cannot silently bind a different
// checksum.
func TestMixedCaseEncode(t *testing.T) {
	encoded, err := Encode("UPPERCASE", []byte{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if encoded != strings.ToLower(encoded) {
		t.Fatalf("encoder produced non-lowercase string %q", encoded)
	}

	// The lowercase form must round trip.
	hrp, decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if hrp != "uppercase" {
		t.Fatalf("unexpected hrp %q", hrp)
	}
	if !bytes.Equal(decoded, []byte{0, 1, 2, 3}) {
		t.Fatalf("unexpected data %v", decoded)
	}
}

// TestConvertBits exercises bit group regrouping in both directions including
// the strict handling of the final incomplete group when padding is disabled.
func TestConvertBits(t *testing.T) {
	tests := []struct {
		input    []byte
		fromBits uint8
		toBits   uint8
		pad      bool
		expected []byte
		err      error
	}{
		{[]byte{}, 8, 5, true, []byte{}, nil},
		{[]byte{0xff, 0xff}, 8, 5, true, []byte{31, 31, 31, 16}, nil},
		{[]byte{31, 31, 31, 16}, 5, 8, false, []byte{0xff, 0xff}, nil},
		{[]byte{0x00}, 8, 5, false, []byte{0}, nil},

		// Unsupported bit group sizes.
		{[]byte{0xff}, 0, 5, true, nil, ErrInvalidBitGroups{}},
		{[]byte{0xff}, 8, 9, true, nil, ErrInvalidBitGroups{}},

		// Non-zero bits in the final incomplete group.
		{[]byte{31, 31, 31, 17}, 5, 8, false, nil, ErrInvalidIncompleteGroup{}},
		{[]byte{0x01}, 8, 5, false, nil, ErrInvalidIncompleteGroup{}},

		// More than four leftover bits.
		{[]byte{31, 31, 31, 31, 31, 31, 31}, 5, 8, false, nil, ErrInvalidIncompleteGroup{}},
	}

	for i, test := range tests {
		actual, err := ConvertBits(test.input, test.fromBits, test.toBits, test.pad)
		if err != test.err {
			t.Errorf("test #%d: expected error %v, got %v", i, test.err, err)
			continue
		}
		if err != nil {
			continue
		}
		if !bytes.Equal(actual, test.expected) {
			t.Errorf("test #%d: expected %v, got %v", i, test.expected, actual)
		}
	}
}

// TestCanDecodeMaxLength ensures strings right at the 90 character limit
// decode while strings just past it are rejected before any checksum work.
func TestCanDecodeMaxLength(t *testing.T) {
	// Build a maximum length string from a short HRP and re-encode it so
	// the checksum is valid.
	data := make([]byte, 90-len("bc")-1-checksumLength)
	encoded, err := Encode("bc", data)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if len(encoded) != 90 {
		t.Fatalf("expected 90 character string, got %d", len(encoded))
	}

	if _, _, err := Decode(encoded); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	tooLong := encoded + "q"
	if _, _, err := Decode(tooLong); err != ErrInvalidLength(len(tooLong)) {
		t.Fatalf("expected length error, got %v", err)
	}
}
