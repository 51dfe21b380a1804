// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/logging"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"go.uber.org/zap"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/runtime"
	"github.com/ava-labs/countervm/state"
	"github.com/ava-labs/countervm/storage"
)

const defaultStep uint64 = 1

var _ runtime.Program = (*Processor)(nil)

// Processor executes counter instructions. It is stateless between calls;
// each Execute is a pure transition over the account views it is handed.
type Processor struct {
	log logging.Logger
}

func NewProcessor(log logging.Logger) *Processor {
	return &Processor{log: log}
}

// Execute decodes [instructionData] and routes it to the matching handler.
// Accounts pass through positionally untouched; the first precondition
// violation is returned as-is.
func (p *Processor) Execute(
	ctx context.Context,
	alloc state.Allocator,
	programID codec.Pubkey,
	accounts []state.Account,
	instructionData []byte,
) error {
	instruction, err := UnmarshalInstruction(instructionData)
	if err != nil {
		return err
	}
	switch uint8(instruction.Variant) {
	case initializeCounterTag:
		return p.initializeCounter(ctx, alloc, programID, accounts, instruction.Initialize.InitialValue)
	case incrementCounterTag:
		return p.incrementCounter(programID, accounts, instruction.Increment.Step)
	case decrementCounterTag:
		return p.decrementCounter(programID, accounts, instruction.Decrement.Step)
	default:
		return ErrInvalidInstructionData
	}
}

// initializeCounter creates the counter account and writes its first
// record.
//
// Accounts expected in order:
// 0. [signer, writable] counter account (to be created)
// 1. [signer, writable] payer account
// 2. [] system program
func (p *Processor) initializeCounter(
	ctx context.Context,
	alloc state.Allocator,
	programID codec.Pubkey,
	accounts []state.Account,
	initialValue uint64,
) error {
	if len(accounts) < 3 {
		return ErrNotEnoughAccounts
	}
	counter := accounts[0]
	payer := accounts[1]

	if len(counter.Data()) > 0 {
		return ErrAccountAlreadyInitialized
	}

	lamports := alloc.MinimumBalance(storage.CounterAccountSize)
	if err := alloc.CreateAccount(
		ctx,
		payer.Key(),
		counter.Key(),
		lamports,
		storage.CounterAccountSize,
		programID,
	); err != nil {
		return err
	}

	record := &storage.CounterAccount{Count: initialValue}
	raw, err := record.Marshal()
	if err != nil {
		return err
	}
	if err := counter.SetData(raw); err != nil {
		return err
	}

	p.log.Info("initialized counter",
		zap.Stringer("counter", counter.Key()),
		zap.Uint64("value", initialValue),
	)
	return nil
}

// incrementCounter adds the step (default 1) to the stored count.
//
// Accounts expected in order:
// 0. [writable] counter account
func (p *Processor) incrementCounter(
	programID codec.Pubkey,
	accounts []state.Account,
	step *uint64,
) error {
	stepValue := defaultStep
	if step != nil {
		stepValue = *step
	}

	if len(accounts) < 1 {
		return ErrNotEnoughAccounts
	}
	counter := accounts[0]

	if counter.Owner() != programID {
		return ErrIncorrectProgramID
	}
	if len(counter.Data()) == 0 {
		return ErrUninitializedAccount
	}

	record, err := storage.UnmarshalCounterAccount(counter.Data())
	if err != nil {
		return ErrInvalidAccountData
	}
	oldCount := record.Count
	record.Count, err = smath.Add64(oldCount, stepValue)
	if err != nil {
		return ErrInvalidAccountData
	}

	raw, err := record.Marshal()
	if err != nil {
		return err
	}
	if err := counter.SetData(raw); err != nil {
		return err
	}

	p.log.Info("incremented counter",
		zap.Stringer("counter", counter.Key()),
		zap.Uint64("step", stepValue),
		zap.Uint64("old", oldCount),
		zap.Uint64("new", record.Count),
	)
	return nil
}

// decrementCounter subtracts the step (default 1) from the stored count.
//
// Accounts expected in order:
// 0. [writable] counter account
func (p *Processor) decrementCounter(
	programID codec.Pubkey,
	accounts []state.Account,
	step *uint64,
) error {
	stepValue := defaultStep
	if step != nil {
		stepValue = *step
	}

	if len(accounts) < 1 {
		return ErrNotEnoughAccounts
	}
	counter := accounts[0]

	if counter.Owner() != programID {
		return ErrIncorrectProgramID
	}
	if len(counter.Data()) == 0 {
		return ErrUninitializedAccount
	}

	record, err := storage.UnmarshalCounterAccount(counter.Data())
	if err != nil {
		return ErrInvalidAccountData
	}
	oldCount := record.Count
	record.Count, err = smath.Sub(oldCount, stepValue)
	if err != nil {
		return ErrInvalidAccountData
	}

	raw, err := record.Marshal()
	if err != nil {
		return err
	}
	if err := counter.SetData(raw); err != nil {
		return err
	}

	p.log.Info("decremented counter",
		zap.Stringer("counter", counter.Key()),
		zap.Uint64("step", stepValue),
		zap.Uint64("old", oldCount),
		zap.Uint64("new", record.Count),
	)
	return nil
}
