// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpcmodel provides data structures of the address related subset of
// the node JSON-RPC API, so results produced by this module marshal to the
// same JSON the node emits.  The RPC transport itself lives elsewhere.
package rpcmodel
