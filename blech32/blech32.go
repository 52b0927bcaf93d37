// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blech32

import (
	"strings"
)

// charset is the same 32 character set used by bech32, in the same order.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// gen encodes the generator polynomial for the blech32 BCH checksum.  Unlike
// the bech32 generator these coefficients do not fit in 32 bits, which is what
// gives blech32 its longer, stronger checksum.
var gen = []uint64{
	0x7d52fba40bd886,
	0x5e8dbf1a03950c,
	0x1c3a3c74072a18,
	0x385d72fa0e5139,
	0x7093e5a608865b,
}

// maxLength is the longest total length a blech32 string may have.  The limit
// is far larger than bech32's 90 characters because a confidential payload
// carries a 33 byte blinding key in front of the witness program.
const maxLength = 1000

// checksumLength is the number of 5-bit groups appended to the data section.
const checksumLength = 12

// toBytes converts each character in the string 'chars' to the value of the
// index of the corresponding character in charset.
func toBytes(chars string) ([]byte, error) {
	decoded := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		index := strings.IndexByte(charset, chars[i])
		if index < 0 {
			return nil, ErrNonCharsetChar(chars[i])
		}
		decoded = append(decoded, byte(index))
	}

	return decoded, nil
}

// toChars converts the byte slice 'data' to a string where each byte in 'data'
// encodes the index of a character in charset.
func toChars(data []byte) (string, error) {
	result := make([]byte, 0, len(data))
	for _, b := range data {
		if int(b) >= len(charset) {
			return "", ErrInvalidDataByte(b)
		}
		result = append(result, charset[b])
	}

	return string(result), nil
}

// polymod folds the expanded human-readable part, the data values and the
// trailing checksum values through the 64-bit BCH checksum accumulator.  A
// nil checksum folds in checksumLength zero values instead, which is the form
// used when creating a new checksum.
func polymod(hrp string, values, checksum []byte) uint64 {
	chk := uint64(1)

	process := func(value byte) {
		b := chk >> 55
		chk = (chk&0x7fffffffffffff)<<5 ^ uint64(value)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}

	for i := 0; i < len(hrp); i++ {
		process(hrp[i] >> 5)
	}
	process(0)
	for i := 0; i < len(hrp); i++ {
		process(hrp[i] & 31)
	}
	for _, v := range values {
		process(v)
	}
	if checksum == nil {
		for i := 0; i < checksumLength; i++ {
			process(0)
		}
	} else {
		for _, v := range checksum {
			process(v)
		}
	}

	return chk
}

// createChecksum returns the checksum values to append to the data section
// for the given checksum version.
func createChecksum(hrp string, data []byte, version Version) []byte {
	chk := polymod(hrp, data, nil) ^ uint64(VersionToConsts[version])

	checksum := make([]byte, checksumLength)
	for i := 0; i < checksumLength; i++ {
		checksum[i] = byte((chk >> uint(5*(checksumLength-1-i))) & 31)
	}

	return checksum
}

// verifyChecksum checks that the trailing checksum values of the data section
// verify under one of the defined checksum constants and reports which one
// did.  At most one constant can verify for a given string.
func verifyChecksum(hrp string, values []byte) (Version, bool) {
	numValues := len(values)
	if numValues < checksumLength {
		return VersionUnknown, false
	}

	chk := polymod(
		hrp, values[:numValues-checksumLength],
		values[numValues-checksumLength:],
	)
	version := ConstsToVersion(ChecksumConst(chk))
	return version, version != VersionUnknown
}

// Decode decodes a blech32 encoded string, returning the human-readable part
// and the data part excluding the checksum.  The decoded data is 5-bit groups,
// not bytes.  Both the original blech32 and the blech32m checksums are
// accepted; use DecodeGeneric when the caller needs to know which one
// verified.
func Decode(blech string) (string, []byte, error) {
	hrp, data, _, err := DecodeGeneric(blech)
	return hrp, data, err
}

// DecodeGeneric decodes a string that was encoded with either the blech32 or
// the blech32m checksum, additionally returning which of the two checksum
// versions verified against the string.
func DecodeGeneric(blech string) (string, []byte, Version, error) {
	// The minimum allowed length of a blech32 string is 14 characters,
	// since it needs a non-empty HRP, a separator, and the 12 character
	// checksum.
	if len(blech) < checksumLength+2 || len(blech) > maxLength {
		return "", nil, VersionUnknown, ErrInvalidLength(len(blech))
	}

	// Only ASCII characters between 33 and 126 are allowed, and the
	// characters must be either all lowercase or all uppercase.
	var hasLower, hasUpper bool
	for i := 0; i < len(blech); i++ {
		if blech[i] < 33 || blech[i] > 126 {
			return "", nil, VersionUnknown,
				ErrInvalidCharacter(blech[i])
		}

		hasLower = hasLower || (blech[i] >= 97 && blech[i] <= 122)
		hasUpper = hasUpper || (blech[i] >= 65 && blech[i] <= 90)
		if hasLower && hasUpper {
			return "", nil, VersionUnknown, ErrMixedCase{}
		}
	}

	// Blech32 is case insensitive, so lowercase everything for the
	// remaining checks.
	if hasUpper {
		blech = strings.ToLower(blech)
	}

	// The string is invalid if the last '1' is non-existent, it is the
	// first character of the string (no human-readable part) or one of the
	// last 12 characters of the string (since the checksum cannot contain
	// the separator).
	one := strings.LastIndexByte(blech, '1')
	if one < 1 || one+checksumLength+1 > len(blech) {
		return "", nil, VersionUnknown, ErrInvalidSeparatorIndex(one)
	}

	// The human-readable part is everything before the last '1'.
	hrp := blech[:one]
	data := blech[one+1:]

	// Each character in the data section corresponds to a 5-bit group.
	decoded, err := toBytes(data)
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	// Verify that the trailing 12 values match the computed checksum under
	// one of the two defined constants.
	blechVersion, ok := verifyChecksum(hrp, decoded)
	if !ok {
		checksum := blech[len(blech)-checksumLength:]
		payload := decoded[:len(decoded)-checksumLength]

		expected, cErr := toChars(createChecksum(hrp, payload, Version0))
		if cErr != nil {
			return "", nil, VersionUnknown, cErr
		}
		expectedM, cErr := toChars(createChecksum(hrp, payload, VersionM))
		if cErr != nil {
			return "", nil, VersionUnknown, cErr
		}

		return "", nil, VersionUnknown, ErrInvalidChecksum{
			Expected:  expected,
			ExpectedM: expectedM,
			Actual:    checksum,
		}
	}

	// Exclude the checksum from the returned data section.
	return hrp, decoded[:len(decoded)-checksumLength], blechVersion, nil
}

// Encode encodes the 5-bit group data section and the human-readable part into
// a blech32 string using the original blech32 checksum.
func Encode(hrp string, data []byte) (string, error) {
	return encodeGeneric(hrp, data, Version0)
}

// EncodeM is the exactly same as the Encode method, but it uses the new
// blech32m constant instead of the original one.
func EncodeM(hrp string, data []byte) (string, error) {
	return encodeGeneric(hrp, data, VersionM)
}

// encodeGeneric encodes the data section and human-readable part with the
// checksum constant identified by the passed version.
func encodeGeneric(hrp string, data []byte, version Version) (string, error) {
	// The checksum is bound to the lowercase form of the prefix.
	hrp = strings.ToLower(hrp)

	combined := make([]byte, 0, len(data)+checksumLength)
	combined = append(combined, data...)
	combined = append(combined, createChecksum(hrp, data, version)...)

	dataChars, err := toChars(combined)
	if err != nil {
		return "", err
	}

	return hrp + "1" + dataChars, nil
}
