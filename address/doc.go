// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package address decodes, validates and classifies Elements style address
strings.

Five address encodings are supported: bech32 and bech32m segwit addresses,
their confidential blech32 and blech32m counterparts, and Base58Check legacy
addresses including the blinded confidential form.  DecodeAddress is the
entry point: given an address string and the parameters of the active
network, it either returns a concrete Address implementation or an Error
whose Description is one of a small fixed set of diagnostic strings shared
with the node RPC interface.

Every function in this package is a pure function of its inputs, so the
package is safe for concurrent use without any locking.
*/
package address
