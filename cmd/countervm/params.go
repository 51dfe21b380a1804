// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"flag"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/program"
	"github.com/ava-labs/countervm/runtime"
)

const (
	logLevelKey        = "log-level"
	ledgerDirKey       = "ledger-dir"
	genesisFileKey     = "genesis-file"
	programIDKey       = "program-id"
	initialValueKey    = "initial-value"
	feePerSignatureKey = "fee-per-signature"
)

func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(consts.Name, flag.ContinueOnError)

	fs.String(logLevelKey, "info", "log level for the bank and program")
	fs.String(ledgerDirKey, "", "directory for the pebble ledger; empty runs in memory")
	fs.String(genesisFileKey, "", "path to a genesis JSON file; empty uses the default genesis")
	fs.String(programIDKey, program.ID.String(), "base58 identity the counter program is registered under")
	fs.Uint64(initialValueKey, 100, "value the counter account is created with")
	fs.Uint64(feePerSignatureKey, runtime.NewDefaultConfig().FeePerSignature, "lamports charged per transaction signature")

	return fs
}

// getViper returns the viper environment for the demo binary
func getViper() (*viper.Viper, error) {
	v := viper.New()

	fs := buildFlagSet()
	pflag.CommandLine.AddGoFlagSet(fs)
	pflag.Parse()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	return v, nil
}
