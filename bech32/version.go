// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ChecksumConst is the constant XOR-ed into the polymod accumulator when
// computing or verifying a checksum.  Each supported address encoding has its
// own constant, which is what distinguishes an original Bech32 string from a
// Bech32m one.
type ChecksumConst uint32

const (
	// Version0Const is the original constant used in the checksum
	// verification for Bech32.
	Version0Const ChecksumConst = 1

	// VersionMConst is the new constant used for Bech32m.
	VersionMConst ChecksumConst = 0x2bc830a3
)

// Version defines the current set of Bech32 encoding versions.
type Version uint8

const (
	// Version0 defines the original Bech32 checksum version.
	Version0 Version = iota

	// VersionM defines the Bech32m checksum version.
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
