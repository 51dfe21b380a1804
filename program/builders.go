// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
)

// NewInitializeInstruction builds the instruction that creates [counter]
// with [initialValue], funded by [payer]. Both the counter and the payer
// must sign the enclosing transaction.
func NewInitializeInstruction(
	programID codec.Pubkey,
	counter codec.Pubkey,
	payer codec.Pubkey,
	initialValue uint64,
) (*chain.Instruction, error) {
	data, err := NewInitialize(initialValue).Marshal()
	if err != nil {
		return nil, err
	}
	return &chain.Instruction{
		ProgramID: programID,
		Accounts: []chain.AccountMeta{
			{Pubkey: counter, IsSigner: true, IsWritable: true},
			{Pubkey: payer, IsSigner: true, IsWritable: true},
			{Pubkey: consts.SystemProgramID, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}

// NewIncrementInstruction builds the instruction that adds [step] (nil for
// the default of 1) to [counter].
func NewIncrementInstruction(
	programID codec.Pubkey,
	counter codec.Pubkey,
	step *uint64,
) (*chain.Instruction, error) {
	data, err := NewIncrement(step).Marshal()
	if err != nil {
		return nil, err
	}
	return &chain.Instruction{
		ProgramID: programID,
		Accounts: []chain.AccountMeta{
			{Pubkey: counter, IsSigner: false, IsWritable: true},
		},
		Data: data,
	}, nil
}

// NewDecrementInstruction builds the instruction that subtracts [step]
// (nil for the default of 1) from [counter].
func NewDecrementInstruction(
	programID codec.Pubkey,
	counter codec.Pubkey,
	step *uint64,
) (*chain.Instruction, error) {
	data, err := NewDecrement(step).Marshal()
	if err != nil {
		return nil, err
	}
	return &chain.Instruction{
		ProgramID: programID,
		Accounts: []chain.AccountMeta{
			{Pubkey: counter, IsSigner: false, IsWritable: true},
		},
		Data: data,
	}, nil
}
