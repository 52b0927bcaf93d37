// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcmodel

// ValidateAddressResult models the data returned by the validateaddress
// command.  When IsValid is false, Error carries one of the fixed
// address-error strings and every other field is left unset.
type ValidateAddressResult struct {
	IsValid         bool    `json:"isvalid"`
	Address         string  `json:"address,omitempty"`
	IsScript        *bool   `json:"isscript,omitempty"`
	IsWitness       *bool   `json:"iswitness,omitempty"`
	WitnessVersion  *int32  `json:"witness_version,omitempty"`
	WitnessProgram  *string `json:"witness_program,omitempty"`
	ConfidentialKey string  `json:"confidential_key,omitempty"`
	Unconfidential  string  `json:"unconfidential,omitempty"`
	Error           string  `json:"error,omitempty"`
}

// GetAddressInfoResult models the address-format portion of the data returned
// by the getaddressinfo command.  Unlike validateaddress, getaddressinfo
// reports an invalid address as an RPCError rather than in the result, so
// there is no error field here.
type GetAddressInfoResult struct {
	Address         string  `json:"address"`
	IsScript        bool    `json:"isscript"`
	IsWitness       bool    `json:"iswitness"`
	WitnessVersion  *int32  `json:"witness_version,omitempty"`
	WitnessProgram  *string `json:"witness_program,omitempty"`
	ConfidentialKey string  `json:"confidential_key,omitempty"`
	Unconfidential  string  `json:"unconfidential,omitempty"`
}
