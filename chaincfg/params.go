// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"strings"
)

// ErrDuplicateNet describes an error where the parameters for a network could
// not be set due to the network already being a registered network.
var ErrDuplicateNet = errors.New("duplicate network")

// Params defines an Elements style network by its address encoding
// parameters.  It holds everything the address decoder needs to know about a
// network: which Base58 version bytes and which human-readable prefixes it
// accepts for each address role.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Address encoding magics.
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	BlindedAddrID    byte // First byte of a blinded legacy address

	// Human-readable part for Bech32 encoded segwit addresses, as defined
	// in BIP 173.
	Bech32HRPSegwit string

	// Human-readable part for Blech32 encoded confidential segwit
	// addresses.
	Blech32HRPSegwit string
}

// LiquidV1Params defines the network parameters for the production Liquid
// network.
var LiquidV1Params = Params{
	Name: "liquidv1",

	// Address encoding magics
	PubKeyHashAddrID: 57,
	ScriptHashAddrID: 39,
	BlindedAddrID:    12,

	// Human-readable parts for segwit addresses
	Bech32HRPSegwit:  "ex",
	Blech32HRPSegwit: "lq",
}

// LiquidTestNetParams defines the network parameters for the public Liquid
// test network.
var LiquidTestNetParams = Params{
	Name: "liquidtestnet",

	// Address encoding magics
	PubKeyHashAddrID: 36,
	ScriptHashAddrID: 19,
	BlindedAddrID:    23,

	// Human-readable parts for segwit addresses
	Bech32HRPSegwit:  "tex",
	Blech32HRPSegwit: "tlq",
}

// ElementsRegressionNetParams defines the network parameters for the Elements
// regression test network.  Not to be confused with the bitcoind regression
// network, it uses its own set of address prefixes.
var ElementsRegressionNetParams = Params{
	Name: "elementsregtest",

	// Address encoding magics
	PubKeyHashAddrID: 235,
	ScriptHashAddrID: 75,
	BlindedAddrID:    4,

	// Human-readable parts for segwit addresses
	Bech32HRPSegwit:  "ert",
	Blech32HRPSegwit: "el",
}

var (
	// registeredNets keeps track of registered network names to detect
	// duplicate registration.
	registeredNets = make(map[string]struct{})

	pubKeyHashAddrIDs     = make(map[byte]struct{})
	scriptHashAddrIDs     = make(map[byte]struct{})
	blindedAddrIDs        = make(map[byte]struct{})
	bech32SegwitPrefixes  = make(map[string]struct{})
	blech32SegwitPrefixes = make(map[string]struct{})
)

// Register registers the network parameters for an Elements network.  This
// may error with ErrDuplicateNet if the network is already registered, either
// due to a previous Register call or because the network is one of the
// default networks.
//
// Network parameters should be registered into this package by a main package
// as early as possible.  Then, library packages may lookup networks or
// network parameters based on inputs and work regardless of the network being
// standard or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Name] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	blindedAddrIDs[params.BlindedAddrID] = struct{}{}

	// A valid Bech32 encoded segwit address always has as prefix the
	// human-readable part for the given net followed by '1'.
	bech32SegwitPrefixes[params.Bech32HRPSegwit+"1"] = struct{}{}
	blech32SegwitPrefixes[params.Blech32HRPSegwit+"1"] = struct{}{}
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix
// a pay-to-pubkey-hash address on any default or registered network.
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix
// a pay-to-script-hash address on any default or registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// IsBlindedAddrID returns whether the id is an identifier known to prefix a
// blinded legacy address on any default or registered network.
func IsBlindedAddrID(id byte) bool {
	_, ok := blindedAddrIDs[id]
	return ok
}

// IsBech32SegwitPrefix returns whether the prefix is a known prefix for
// segwit addresses on any default or registered network.  This is used when
// decoding an address string into a specific address type.
func IsBech32SegwitPrefix(prefix string) bool {
	prefix = strings.ToLower(prefix)
	_, ok := bech32SegwitPrefixes[prefix]
	return ok
}

// IsBlech32SegwitPrefix returns whether the prefix is a known prefix for
// confidential segwit addresses on any default or registered network.
func IsBlech32SegwitPrefix(prefix string) bool {
	prefix = strings.ToLower(prefix)
	_, ok := blech32SegwitPrefixes[prefix]
	return ok
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&LiquidV1Params)
	mustRegister(&LiquidTestNetParams)
	mustRegister(&ElementsRegressionNetParams)
}
