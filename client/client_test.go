// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client_test

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/client"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/codec/codectest"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/crypto/ed25519"
	"github.com/ava-labs/countervm/program"
	"github.com/ava-labs/countervm/runtime"
)

var testProgramID = codec.PubkeyFromSeed("counter-program")

func newTestClient(t *testing.T) *client.Client {
	require := require.New(t)
	bank, err := runtime.New(
		logging.NoLog{},
		prometheus.NewRegistry(),
		runtime.NewDefaultConfig(),
		runtime.DefaultGenesis(),
		memdb.New(),
	)
	require.NoError(err)
	bank.RegisterProgram(testProgramID, program.NewProcessor(logging.NoLog{}))
	return client.New(bank, testProgramID)
}

func newFundedPayer(t *testing.T, c *client.Client) ed25519.PrivateKey {
	require := require.New(t)
	payer, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	_, err = c.Airdrop(context.Background(), codec.Pubkey(payer.PublicKey()), consts.LamportsPerSol)
	require.NoError(err)
	return payer
}

func TestClientLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	c := newTestClient(t)
	require.Equal(testProgramID, c.ProgramID())

	payer := newFundedPayer(t, c)
	payerPub := codec.Pubkey(payer.PublicKey())

	balance, err := c.Balance(ctx, payerPub)
	require.NoError(err)
	require.Equal(consts.LamportsPerSol, balance)

	counterKey, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	counter := codec.Pubkey(counterKey.PublicKey())

	txID, err := c.InitializeCounter(ctx, payer, counterKey, 100)
	require.NoError(err)
	require.NotEmpty(txID)
	value, err := c.GetCounter(ctx, counter)
	require.NoError(err)
	require.Equal(uint64(100), value)

	_, err = c.IncrementCounter(ctx, payer, counter, nil)
	require.NoError(err)

	five := uint64(5)
	_, err = c.IncrementCounter(ctx, payer, counter, &five)
	require.NoError(err)

	_, err = c.DecrementCounter(ctx, payer, counter, nil)
	require.NoError(err)

	three := uint64(3)
	_, err = c.DecrementCounter(ctx, payer, counter, &three)
	require.NoError(err)

	value, err = c.GetCounter(ctx, counter)
	require.NoError(err)
	require.Equal(uint64(102), value)

	// one SOL minus the counter's rent-exempt balance and five fees: two
	// signatures on the create, one on each of the four steps
	balance, err = c.Balance(ctx, payerPub)
	require.NoError(err)
	require.Equal(consts.LamportsPerSol-946_560-30_000, balance)
}

func TestClientGetCounterMissing(t *testing.T) {
	require := require.New(t)

	c := newTestClient(t)
	addr, err := codectest.NewRandomPubkey()
	require.NoError(err)

	_, err = c.GetCounter(context.Background(), addr)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestClientUnderflowLeavesValue(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	c := newTestClient(t)
	payer := newFundedPayer(t, c)
	counterKey, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	counter := codec.Pubkey(counterKey.PublicKey())

	_, err = c.InitializeCounter(ctx, payer, counterKey, 1)
	require.NoError(err)

	five := uint64(5)
	_, err = c.DecrementCounter(ctx, payer, counter, &five)
	require.ErrorIs(err, program.ErrInvalidAccountData)

	value, err := c.GetCounter(ctx, counter)
	require.NoError(err)
	require.Equal(uint64(1), value)
}
