// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"errors"

	"github.com/RemnantLink/Reliquiae/chaincfg"
	"github.com/RemnantLink/Reliquiae/rpcmodel"
)

// ValidateAddress decodes the passed address string against the given network
// and reports the outcome the way the validateaddress RPC does: a result with
// IsValid true and the decoded fields filled in, or IsValid false and Error
// set to the fixed description of the failure.  It never returns an error
// value; callers that prefer a fail-fast convention should use
// GetAddressInfo.
func ValidateAddress(addr string,
	params *chaincfg.Params) *rpcmodel.ValidateAddressResult {

	decoded, err := DecodeAddress(addr, params)
	if err != nil {
		log.Debugf("Address %q rejected: %v", addr, err)
		return &rpcmodel.ValidateAddressResult{
			IsValid: false,
			Error:   errorDescription(err),
		}
	}

	result := &rpcmodel.ValidateAddressResult{
		IsValid: true,
		Address: decoded.EncodeAddress(),
	}

	isScript := false
	isWitness := false
	switch a := decoded.(type) {
	case *AddressScriptHash:
		isScript = true

	case *AddressBlinded:
		isScript = a.payloadID == params.ScriptHashAddrID
		result.ConfidentialKey = hex.EncodeToString(a.blindingKey[:])
		result.Unconfidential = a.Unconfidential(params).EncodeAddress()

	case *AddressSegWit:
		isWitness = true
		version := int32(a.WitnessVersion())
		program := hex.EncodeToString(a.WitnessProgram())
		result.WitnessVersion = &version
		result.WitnessProgram = &program
		isScript = a.WitnessVersion() == 0 && len(a.WitnessProgram()) == 32

	case *AddressConfidential:
		isWitness = true
		version := int32(a.WitnessVersion())
		program := hex.EncodeToString(a.WitnessProgram())
		result.WitnessVersion = &version
		result.WitnessProgram = &program
		isScript = a.WitnessVersion() == 0 && len(a.WitnessProgram()) == 32
		result.ConfidentialKey = hex.EncodeToString(a.blindingKey[:])
		result.Unconfidential = a.Unconfidential(params).EncodeAddress()
	}
	result.IsScript = &isScript
	result.IsWitness = &isWitness

	return result
}

// GetAddressInfo decodes the passed address string against the given network
// the way the getaddressinfo RPC does: the decoded fields on success, or an
// *rpcmodel.RPCError with code ErrRPCInvalidAddressOrKey carrying the fixed
// failure description.
func GetAddressInfo(addr string,
	params *chaincfg.Params) (*rpcmodel.GetAddressInfoResult, error) {

	decoded, err := DecodeAddress(addr, params)
	if err != nil {
		return nil, rpcmodel.NewRPCError(
			rpcmodel.ErrRPCInvalidAddressOrKey,
			errorDescription(err),
		)
	}

	report := ValidateAddress(addr, params)
	result := &rpcmodel.GetAddressInfoResult{
		Address:         decoded.EncodeAddress(),
		IsScript:        report.IsScript != nil && *report.IsScript,
		IsWitness:       report.IsWitness != nil && *report.IsWitness,
		WitnessVersion:  report.WitnessVersion,
		WitnessProgram:  report.WitnessProgram,
		ConfidentialKey: report.ConfidentialKey,
		Unconfidential:  report.Unconfidential,
	}
	return result, nil
}

// errorDescription maps an error returned by DecodeAddress to its fixed
// user-facing description.  Errors that are not address Errors report the
// generic format failure so the closed taxonomy is preserved.
func errorDescription(err error) string {
	var addrErr Error
	if errors.As(err, &addrErr) {
		return addrErr.Description
	}
	return errorKindDescs[ErrInvalidFormat]
}
