// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blech32

import (
	"strings"
	"testing"
)

// TestBlech32 tests decoding and re-encoding of valid confidential address
// strings along with rejection of malformed strings for the correct reason.
func TestBlech32(t *testing.T) {
	tests := []struct {
		str           string
		expectedError error
	}{
		{"el1qq0umk3pez693jrrlxz9ndlkuwne93gdu9g83mhhzuyf46e3mdzfpva0w48gqgzgrklncnm0k5zeyw8my2ypfsmxh4xcjh2rse", nil},
		{"lq1qq0umk3pez693jrrlxz9ndlkuwne93gdu9g83mhhzuyf46e3mdzfpva0w48gqgzgrklncnm0k5zeyw8my2ypfsswhx9kv8d3vr", nil},
		{"EL1QQ0UMK3PEZ693JRRLXZ9NDLKUWNE93GDU9G83MHHZUYF46E3MDZFPVA0W48GQGZGRKLNCNM0K5ZEYW8MY2YPFSMXH4XCJH2RSE", nil},

		// Invalid character (space).
		{"el1qq0umk3pez693jrrlxz9ndlkuwne93gdu9g8 mhhz", ErrInvalidCharacter(' ')},
		// Mixed case.
		{"el1qq0Umk3pez693jrrlxz9ndlkuwne93gdu9g83mhhzuyf46e3mdzfpva0w48gqgzgrklncnm0k5zeyw8my2ypfsmxh4xcjh2rse", ErrMixedCase{}},
		// No separator.
		{"pzry9x0s0muk00", ErrInvalidSeparatorIndex(-1)},
		// Empty HRP.
		{"1pzry9x0s0muk0", ErrInvalidSeparatorIndex(0)},
		// Too short checksum.
		{"el1qq0umk3pez", ErrInvalidLength(13)},
		// Invalid data character.
		{"el1bq0umk3pez693jrrlxz9ndlkuwne93gdu9g83mhhzuyf46e3mdzfpva0w48gqgzgrklncnm0k5zeyw8my2ypfsmxh4xcjh2rse", ErrNonCharsetChar('b')},
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
			continue
		}

		// Check that it encodes to the same string, using the original
		// blech32 checksum.
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
		flipped := str[:pos+1] + string(str[pos+1]^1) + str[pos+2:]
		if _, _, err = Decode(flipped); err == nil {
			t.Error("expected decoding to fail")
		}
	}
}

// TestBlech32M tests that blech32m strings decode under the blech32m checksum
// constant and re-encode byte for byte with EncodeM.
func TestBlech32M(t *testing.T) {
	tests := []string{
		"el1pq0umk3pez693jrrlxz9ndlkuwne93gdu9g83mhhzuyf46e3mdzfpv7d7vel0nh9m4326qc54e6rskpczn07dktww9rv4nu5ptvt0s9ucg3at0r8erkgr",
		"el1pq0umk3pez693jrrlxz9ndlkuwne93gdu9g83mhhzuyf46e3mdzfpva0w48gqgzgrklncnm0k5zeyw8my2ypfswastqm6cfhuc",
		"lq1qq0umk3pez693jrrlxz9ndlkuwne93gdu9g83mhhzuyf46e3mdzfpva0w48gqgzgrklncnm0k5zeyw8my2ypfscmm3q74jvv3r",
	}

	for _, str := range tests {
		hrp, decoded, version, err := DecodeGeneric(str)
		if err != nil {
			t.Errorf("%s: unexpected decoding error %v", str, err)
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

		if encoded != str {
			t.Errorf("expected data to encode to %v, but got %v",
				str, encoded)
		}
	}
}

// TestBlech32ChecksumVariantsDisjoint ensures a string carrying one checksum
// variant never verifies under the other engine constant.
func TestBlech32ChecksumVariantsDisjoint(t *testing.T) {
	data := make([]byte, 54)
	str, err := Encode("el", data)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	strM, err := EncodeM("el", data)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if str == strM {
		t.Fatal("variants encoded to the same string")
	}

	_, _, version, err := DecodeGeneric(str)
	if err != nil || version != Version0 {
		t.Fatalf("expected version 0, got %v (err %v)", version, err)
	}
	_, _, version, err = DecodeGeneric(strM)
	if err != nil || version != VersionM {
		t.Fatalf("expected version m, got %v (err %v)", version, err)
	}
}

// TestBlech32MaxLength ensures strings right at the 1000 character limit
// decode while strings past it are rejected up front.
func TestBlech32MaxLength(t *testing.T) {
	data := make([]byte, maxLength-len("el")-1-checksumLength)
	encoded, err := Encode("el", data)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if len(encoded) != maxLength {
		t.Fatalf("expected %d character string, got %d", maxLength,
			len(encoded))
	}

	if _, _, err := Decode(encoded); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	tooLong := encoded + "q"
	if _, _, err := Decode(tooLong); err != ErrInvalidLength(len(tooLong)) {
		t.Fatalf("expected length error, got %v", err)
	}
}
