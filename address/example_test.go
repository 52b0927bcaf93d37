// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"fmt"

	"github.com/RemnantLink/Reliquiae/address"
	"github.com/RemnantLink/Reliquiae/chaincfg"
)

// This example demonstrates decoding a segwit address and accessing its
// witness components.
func ExampleDecodeAddress() {
	addr, err := address.DecodeAddress(
		"ert1qtmp74ayg7p24uslctssvjm06q5phz4yr7gdkdv",
		&chaincfg.ElementsRegressionNetParams,
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	segwit := addr.(*address.AddressSegWit)
	fmt.Println(segwit.EncodeAddress())
	fmt.Println(segwit.WitnessVersion())
	fmt.Printf("%x\n", segwit.WitnessProgram())

	// Output:
	// ert1qtmp74ayg7p24uslctssvjm06q5phz4yr7gdkdv
	// 0
	// 5ec3eaf488f0555e43f85c20c96dfa0503715483
}

// This example demonstrates the validateaddress style report for an invalid
// address.
func ExampleValidateAddress() {
	info := address.ValidateAddress(
		"bc1pw508d6qejxtdg4y5r3zarvary0c5xw7kw508d6qejxtdg4y5r3zarvary0c5xw7k7grplx",
		&chaincfg.ElementsRegressionNetParams,
	)
	fmt.Println(info.IsValid)
	fmt.Println(info.Error)

	// Output:
	// false
	// Invalid prefix for Bech32 address
}
