// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blech32

// ChecksumConst is the constant XOR-ed into the polymod accumulator when
// computing or verifying a checksum.  Unlike the bech32 constants these do
// not fit in 32 bits, matching the wider blech32 accumulator.
type ChecksumConst uint64

const (
	// Version0Const is the original constant used in the checksum
	// verification for blech32.
	Version0Const ChecksumConst = 1

	// VersionMConst is the new constant used for blech32m.
	VersionMConst ChecksumConst = 0x455972a3350f7a1
)

// Version defines the current set of blech32 encoding versions.
type Version uint8

const (
	// Version0 defines the original blech32 checksum version.
	Version0 Version = iota

	// VersionM defines the blech32m checksum version, which tracks the
	// bech32m tweak of bech32.
	VersionM

	// VersionUnknown denotes an unknown or failed checksum version.
	VersionUnknown
)

// VersionToConsts maps each checksum version to its associated constant.
var VersionToConsts = map[Version]ChecksumConst{
	Version0: Version0Const,
	VersionM: VersionMConst,
}

// ConstsToVersion maps a checksum constant back to its checksum version.
func ConstsToVersion(c ChecksumConst) Version {
	for version, constant := range VersionToConsts {
		if c == constant {
			return version
		}
	}

	return VersionUnknown
}
