// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 format specified in
BIP-173, as well as the checksum variant bech32m specified in BIP-350.

Test vectors from the two BIPs are added to ensure compatibility with the
reference implementations.
*/
package bech32
