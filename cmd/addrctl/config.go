// Copyright (c) 2023-2024 The Reliquiae developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"

	"github.com/RemnantLink/Reliquiae/chaincfg"
)

const (
	defaultLogFilename = "addrctl.log"
	defaultDebugLevel  = "info"
)

var (
	addrctlHomeDir  = btcutil.AppDataDir("addrctl", false)
	defaultLogFile  = filepath.Join(addrctlHomeDir, "logs", defaultLogFilename)
	activeNetParams = &chaincfg.LiquidV1Params
)

// config defines the configuration options for addrctl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion            bool   `short:"V" long:"version" description:"Display version information and exit"`
	LiquidTestNet          bool   `long:"liquidtestnet" description:"Use the Liquid test network"`
	ElementsRegressionTest bool   `long:"elementsregtest" description:"Use the Elements regression test network"`
	JSON                   bool   `short:"j" long:"json" description:"Output one JSON result object per address"`
	FailFast               bool   `long:"failfast" description:"Stop at the first invalid address and exit non-zero"`
	LogToFile              bool   `long:"logtofile" description:"Additionally write logs to a rotated log file"`
	LogFile                string `long:"logfile" description:"Path of the rotated log file"`
	DebugLevel             string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// loadConfig initializes and parses the config using command line options.
// The remaining arguments are the address strings to validate.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		LogFile:    defaultLogFile,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

	// Multiple networks can't be selected simultaneously.
	funcName := "loadConfig"
	numNets := 0
	if cfg.LiquidTestNet {
		numNets++
		activeNetParams = &chaincfg.LiquidTestNetParams
	}
	if cfg.ElementsRegressionTest {
		numNets++
		activeNetParams = &chaincfg.ElementsRegressionNetParams
	}
	if numNets > 1 {
		str := "%s: The liquidtestnet and elementsregtest params " +
			"can't be used together -- choose one of the two"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Validate debug log level.
	if !validLogLevel(cfg.DebugLevel) {
		str := "%s: The specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
