// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blech32 provides a Go implementation of the blech32 format used by
Elements based chains for confidential segregated witness addresses, as well
as its blech32m checksum variant.

Blech32 is structurally the same encoding as bech32: a human-readable part, a
'1' separator, and a base32 data section terminated by a checksum.  It differs
in the generator polynomial, which produces a 12 character checksum instead of
6, and in the much larger maximum string length needed to fit a 33 byte
blinding key in front of the witness program.
*/
package blech32
