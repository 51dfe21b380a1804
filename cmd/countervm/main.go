// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// countervm runs the counter program end to end against a local bank: it
// funds a payer, creates a counter account, moves the value up and down, and
// prints the resulting state.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/countervm/client"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/crypto/ed25519"
	"github.com/ava-labs/countervm/pebble"
	"github.com/ava-labs/countervm/program"
	"github.com/ava-labs/countervm/runtime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", consts.Name, err)
		os.Exit(1)
	}
}

func run() error {
	v, err := getViper()
	if err != nil {
		return fmt.Errorf("couldn't get config: %w", err)
	}

	level, err := logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		return err
	}
	log := logging.NewLogger(
		consts.Name,
		logging.NewWrappedCore(level, os.Stderr, logging.Plain.ConsoleEncoder()),
	)

	programID, err := codec.ParsePubkey(v.GetString(programIDKey))
	if err != nil {
		return fmt.Errorf("invalid program id: %w", err)
	}

	var db database.Database
	if dir := v.GetString(ledgerDirKey); dir != "" {
		db, _, err = pebble.New(dir, pebble.NewDefaultConfig())
		if err != nil {
			return fmt.Errorf("couldn't open ledger at %s: %w", dir, err)
		}
	} else {
		db = memdb.New()
	}
	defer db.Close()

	gen := runtime.DefaultGenesis()
	if path := v.GetString(genesisFileKey); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if gen, err = runtime.NewGenesis(raw); err != nil {
			return err
		}
	}

	config := runtime.NewDefaultConfig()
	config.FeePerSignature = v.GetUint64(feePerSignatureKey)

	bank, err := runtime.New(log, prometheus.NewRegistry(), config, gen, db)
	if err != nil {
		return err
	}
	bank.RegisterProgram(programID, program.NewProcessor(log))
	c := client.New(bank, programID)

	payer, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return err
	}
	counterKey, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return err
	}
	payerPub := codec.Pubkey(payer.PublicKey())
	counter := codec.Pubkey(counterKey.PublicKey())

	ctx := context.Background()

	txID, err := c.Airdrop(ctx, payerPub, consts.LamportsPerSol)
	if err != nil {
		return err
	}
	fmt.Printf("airdropped 1 SOL to payer %s (tx %s)\n", payerPub, txID)

	initialValue := v.GetUint64(initialValueKey)
	if txID, err = c.InitializeCounter(ctx, payer, counterKey, initialValue); err != nil {
		return err
	}
	fmt.Printf("initialized counter %s to %d (tx %s)\n", counter, initialValue, txID)

	if txID, err = c.IncrementCounter(ctx, payer, counter, nil); err != nil {
		return err
	}
	fmt.Printf("incremented counter by 1 (tx %s)\n", txID)

	step := uint64(5)
	if txID, err = c.IncrementCounter(ctx, payer, counter, &step); err != nil {
		return err
	}
	fmt.Printf("incremented counter by %d (tx %s)\n", step, txID)

	if txID, err = c.DecrementCounter(ctx, payer, counter, nil); err != nil {
		return err
	}
	fmt.Printf("decremented counter by 1 (tx %s)\n", txID)

	step = 3
	if txID, err = c.DecrementCounter(ctx, payer, counter, &step); err != nil {
		return err
	}
	fmt.Printf("decremented counter by %d (tx %s)\n", step, txID)

	value, err := c.GetCounter(ctx, counter)
	if err != nil {
		return err
	}
	balance, err := c.Balance(ctx, payerPub)
	if err != nil {
		return err
	}
	fmt.Printf("final counter value: %d\n", value)
	fmt.Printf("payer balance: %d lamports\n", balance)
	return nil
}
