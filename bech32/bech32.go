// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
)

// charset is the set of characters used in the data section of bech32 strings.
// Note that this is ordered, such that for a given charset[i], i is the binary
// value of the character.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// gen encodes the generator polynomial for the bech32 BCH checksum.
var gen = []uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// maxLength is the longest total length a bech32 string may have, per BIP-173.
const maxLength = 90

// checksumLength is the number of 5-bit groups appended to the data section.
const checksumLength = 6

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
// trailing checksum values through the BCH checksum accumulator.  Passing a
// nil checksum folds in checksumLength zero values instead, which is the form
// used when creating a new checksum.  The human-readable part is expanded as
// the high 3 bits of each character, a zero, then the low 5 bits of each
// character, which binds the checksum to the prefix.
func polymod(hrp string, values, checksum []byte) uint32 {
	chk := uint32(1)

	process := func(value byte) {
		b := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(value)
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
	chk := polymod(hrp, data, nil) ^ uint32(VersionToConsts[version])

	checksum := make([]byte, checksumLength)
	for i := 0; i < checksumLength; i++ {
		checksum[i] = byte((chk >> uint(5*(checksumLength-1-i))) & 31)
	}

	return checksum
}

// verifyChecksum checks that the trailing checksum values of the data section
// verify under one of the defined checksum constants.  At most one constant
// can verify for a given string, and which one did determines the returned
// checksum version.
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

// decodeNoLimit is a bech32 checksum version aware arbitrary string length
// decoder.  This function will return the version of the decoded checksum
// constant so higher level validation can be performed to ensure the correct
// variant of bech32 was used when encoding.
func decodeNoLimit(bech string) (string, []byte, Version, error) {
	// The minimum allowed length of a bech32 string is 8 characters, since
	// it needs a non-empty HRP, a separator, and the 6 character checksum.
	if len(bech) < 8 {
		return "", nil, VersionUnknown, ErrInvalidLength(len(bech))
	}

	// Only ASCII characters between 33 and 126 are allowed.
	var hasLower, hasUpper bool
	for i := 0; i < len(bech); i++ {
		if bech[i] < 33 || bech[i] > 126 {
			return "", nil, VersionUnknown,
				ErrInvalidCharacter(bech[i])
		}

		// The characters must be either all lowercase or all uppercase.
		hasLower = hasLower || (bech[i] >= 97 && bech[i] <= 122)
		hasUpper = hasUpper || (bech[i] >= 65 && bech[i] <= 90)
		if hasLower && hasUpper {
			return "", nil, VersionUnknown, ErrMixedCase{}
		}
	}

	// Bech32 is case insensitive, so lowercase everything for the remaining
	// checks.
	if hasUpper {
		bech = strings.ToLower(bech)
	}

	// The string is invalid if the last '1' is non-existent, it is the
	// first character of the string (no human-readable part) or one of the
	// last 6 characters of the string (since the checksum cannot contain
	// the separator).
	one := strings.LastIndexByte(bech, '1')
	if one < 1 || one+checksumLength+1 > len(bech) {
		return "", nil, VersionUnknown, ErrInvalidSeparatorIndex(one)
	}

	// The human-readable part is everything before the last '1'.
	hrp := bech[:one]
	data := bech[one+1:]

	// Each character in the data section corresponds to a 5-bit group.
	decoded, err := toBytes(data)
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	// Verify that the trailing 6 values match the computed checksum under
	// one of the two defined constants.
	bechVersion, ok := verifyChecksum(hrp, decoded)
	if !ok {
		// The checksum is invalid under both constants, so include the
		// expected checksums for each in the error for diagnostics.
		checksum := bech[len(bech)-checksumLength:]
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
	return hrp, decoded[:len(decoded)-checksumLength], bechVersion, nil
}

// Decode decodes a bech32 encoded string, returning the human-readable part
// and the data part excluding the checksum.  The decoded data is 5-bit groups,
// not bytes.  Both the original bech32 and the bech32m checksums are accepted;
// use DecodeGeneric when the caller needs to know which one verified.
//
// The maximum length of the string is 90 characters per BIP-173.
func Decode(bech string) (string, []byte, error) {
	hrp, data, _, err := DecodeGeneric(bech)
	return hrp, data, err
}

// DecodeGeneric decodes a string that was encoded with either the bech32 or
// the bech32m checksum, additionally returning which of the two checksum
// versions verified against the string.
func DecodeGeneric(bech string) (string, []byte, Version, error) {
	if len(bech) > maxLength {
		return "", nil, VersionUnknown, ErrInvalidLength(len(bech))
	}

	return decodeNoLimit(bech)
}

// Encode encodes the 5-bit group data section and the human-readable part into
// a bech32 string using the original bech32 checksum.
func Encode(hrp string, data []byte) (string, error) {
	return encodeGeneric(hrp, data, Version0)
}

// EncodeM is the exactly same as the Encode method, but it uses the new
// bech32m constant instead of the original one.
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

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.  When pad is true,
// any remaining bits are zero-padded into a final group; otherwise an
// incomplete final group must be empty padding of fewer than fromBits bits.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}

	// The final length is a multiple crossing, so calculate the max size to
	// avoid incremental allocations.
	maxSize := len(data)*int(fromBits)/int(toBits) + 1
	regrouped := make([]byte, 0, maxSize)

	// Keep track of the next byte being assembled and how many bits of it
	// are filled in so far.
	var nextByte byte
	var filledBits uint8

	for _, b := range data {
		// Discard unused bits.
		b <<= 8 - fromBits

		// How many bits remain to be extracted from this input byte.
		remFromBits := fromBits
		for remFromBits > 0 {
			// How many bits remain to be added to the next byte.
			remToBits := toBits - filledBits

			// The number of bytes to next extract is the minimum of
			// remFromBits and remToBits.
			toExtract := remFromBits
			if remToBits < toExtract {
				toExtract = remToBits
			}

			// Add the next bits to nextByte, shifting the already
			// added bits to the left.
			nextByte = (nextByte << toExtract) | (b >> (8 - toExtract))

			// Discard the bits we just extracted and get ready for
			// next iteration.
			b <<= toExtract
			remFromBits -= toExtract
			filledBits += toExtract

			// If the nextByte is completely filled, we add it to
			// our regrouped bytes and start on the next byte.
			if filledBits == toBits {
				regrouped = append(regrouped, nextByte)
				filledBits = 0
				nextByte = 0
			}
		}
	}

	// We pad any unfinished group if specified.
	if pad && filledBits > 0 {
		nextByte <<= toBits - filledBits
		regrouped = append(regrouped, nextByte)
		filledBits = 0
		nextByte = 0
	}

	// Any incomplete group must be <= 4 bits, and all zeroes.
	if filledBits > 0 && (filledBits > 4 || nextByte != 0) {
		return nil, ErrInvalidIncompleteGroup{}
	}

	return regrouped, nil
}
