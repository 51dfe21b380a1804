// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client builds, signs, and submits counter transactions against a
// ledger backend and decodes the state they produce.
package client

import (
	"context"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/crypto/ed25519"
	"github.com/ava-labs/countervm/program"
	"github.com/ava-labs/countervm/storage"
)

// Backend is the ledger surface the client drives. *runtime.Bank satisfies
// it.
type Backend interface {
	SubmitTransaction(ctx context.Context, tx *chain.Transaction) (string, error)
	GetAccount(ctx context.Context, pk codec.Pubkey) (*chain.Account, error)
	GetBalance(ctx context.Context, pk codec.Pubkey) (uint64, error)
	RequestAirdrop(ctx context.Context, to codec.Pubkey, lamports uint64) (string, error)
}

type Client struct {
	backend   Backend
	programID codec.Pubkey
}

func New(backend Backend, programID codec.Pubkey) *Client {
	return &Client{
		backend:   backend,
		programID: programID,
	}
}

func (c *Client) ProgramID() codec.Pubkey {
	return c.programID
}

// Airdrop credits [to] with [lamports] and returns the funding transaction
// ID.
func (c *Client) Airdrop(ctx context.Context, to codec.Pubkey, lamports uint64) (string, error) {
	return c.backend.RequestAirdrop(ctx, to, lamports)
}

func (c *Client) Balance(ctx context.Context, pk codec.Pubkey) (uint64, error) {
	return c.backend.GetBalance(ctx, pk)
}

// InitializeCounter creates the counter account owned by the program and
// seeds it with [initialValue]. The counter key signs to prove ownership of
// the new address and the payer signs to fund its rent-exempt balance.
func (c *Client) InitializeCounter(
	ctx context.Context,
	payer ed25519.PrivateKey,
	counter ed25519.PrivateKey,
	initialValue uint64,
) (string, error) {
	payerPub := codec.Pubkey(payer.PublicKey())
	counterPub := codec.Pubkey(counter.PublicKey())
	instruction, err := program.NewInitializeInstruction(c.programID, counterPub, payerPub, initialValue)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, payerPub, instruction, payer, counter)
}

// IncrementCounter adds [step] to the counter, or 1 when [step] is nil.
func (c *Client) IncrementCounter(
	ctx context.Context,
	payer ed25519.PrivateKey,
	counter codec.Pubkey,
	step *uint64,
) (string, error) {
	instruction, err := program.NewIncrementInstruction(c.programID, counter, step)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, codec.Pubkey(payer.PublicKey()), instruction, payer)
}

// DecrementCounter subtracts [step] from the counter, or 1 when [step] is
// nil.
func (c *Client) DecrementCounter(
	ctx context.Context,
	payer ed25519.PrivateKey,
	counter codec.Pubkey,
	step *uint64,
) (string, error) {
	instruction, err := program.NewDecrementInstruction(c.programID, counter, step)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, codec.Pubkey(payer.PublicKey()), instruction, payer)
}

// GetCounter reads the counter account and returns its current value.
func (c *Client) GetCounter(ctx context.Context, counter codec.Pubkey) (uint64, error) {
	account, err := c.backend.GetAccount(ctx, counter)
	if err != nil {
		return 0, err
	}
	record, err := storage.UnmarshalCounterAccount(account.Data)
	if err != nil {
		return 0, err
	}
	return record.Count, nil
}

func (c *Client) submit(
	ctx context.Context,
	payer codec.Pubkey,
	instruction *chain.Instruction,
	keys ...ed25519.PrivateKey,
) (string, error) {
	tx := chain.NewTransaction(chain.Message{
		Payer:        payer,
		Instructions: []chain.Instruction{*instruction},
	})
	if err := tx.Sign(keys...); err != nil {
		return "", err
	}
	return c.backend.SubmitTransaction(ctx, tx)
}
