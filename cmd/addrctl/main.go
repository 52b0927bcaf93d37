// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/RemnantLink/Reliquiae/address"
)

var cfg *config

// validateOne validates a single address string against the active network
// and writes the outcome to stdout.  It returns whether the address was
// valid.
func validateOne(addr string) bool {
	result := address.ValidateAddress(addr, activeNetParams)

	if cfg.JSON {
		out, err := json.Marshal(result)
		if err != nil {
			log.Errorf("Unable to marshal result for %q: %v",
				addr, err)
			return false
		}
		fmt.Printf("%s\n", out)
		return result.IsValid
	}

	if !result.IsValid {
		fmt.Printf("%s: %s\n", addr, result.Error)
		return false
	}

	switch {
	case result.ConfidentialKey != "" && result.WitnessVersion != nil:
		fmt.Printf("%s: valid confidential witness address (v%d, "+
			"unconfidential %s)\n", addr, *result.WitnessVersion,
			result.Unconfidential)
	case result.ConfidentialKey != "":
		fmt.Printf("%s: valid blinded address (unconfidential %s)\n",
			addr, result.Unconfidential)
	case result.WitnessVersion != nil:
		fmt.Printf("%s: valid witness address (v%d, program %s)\n",
			addr, *result.WitnessVersion, *result.WitnessProgram)
	case result.IsScript != nil && *result.IsScript:
		fmt.Printf("%s: valid script hash address\n", addr)
	default:
		fmt.Printf("%s: valid pubkey hash address\n", addr)
	}
	return true
}

// realMain is the real main function for the utility.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	if cfg.LogToFile {
		initLogRotator(cfg.LogFile)
		defer logRotator.Close()
	}
	setLogLevels(cfg.DebugLevel)

	log.Debugf("Validating against the %s network", activeNetParams.Name)

	// Addresses come from the command line, or from stdin one per line
	// when none were given.
	numInvalid := 0
	if len(args) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			addr := scanner.Text()
			if addr == "" {
				continue
			}
			if !validateOne(addr) {
				numInvalid++
				if cfg.FailFast {
					return fmt.Errorf("invalid address %q", addr)
				}
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	} else {
		for _, addr := range args {
			if !validateOne(addr) {
				numInvalid++
				if cfg.FailFast {
					return fmt.Errorf("invalid address %q", addr)
				}
			}
		}
	}

	if numInvalid > 0 {
		return fmt.Errorf("%d invalid address(es)", numInvalid)
	}
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
