// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines address encoding parameters for the supported
// Elements based networks, as well as the ability to register parameters for
// custom networks started with a non-default chain name.
//
// The address package uses these parameters to decide which Base58 version
// bytes and which Bech32/Blech32 human-readable prefixes are acceptable for a
// given network.
package chaincfg
