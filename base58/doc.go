// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides the Base58Check encoding used by legacy addresses.

A check-encoded string carries a leading version byte identifying the address
role on a network and a trailing 4 byte checksum computed as the first four
bytes of the double-SHA256 of the rest of the payload.  The raw base-58
alphabet conversion is delegated to the btcutil base58 codec.
*/
package base58
