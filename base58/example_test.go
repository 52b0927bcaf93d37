// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"fmt"

	"github.com/RemnantLink/Reliquiae/base58"
)

// This example demonstrates how to encode data using the CheckEncode function.
// This is useful for encoding versioned payloads such as addresses.
func ExampleCheckEncode() {
	data := []byte("Test data")
	encoded := base58.CheckEncode(data, 0)

	fmt.Println(encoded)

	// Output:
	// 182iP79GRURMp7oMHDU
}

// This example demonstrates how to decode check-encoded data and recover the
// version byte alongside the payload.
func ExampleCheckDecode() {
	encoded := "182iP79GRURMp7oMHDU"
	decoded, version, err := base58.CheckDecode(encoded)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Decoded data: %x\n", decoded)
	fmt.Println("Version Byte:", version)

	// Output:
	// Decoded data: 546573742064617461
	// Version Byte: 0
}
