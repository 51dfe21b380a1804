// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/countervm/codec"
)

// Account is a program's view of one account supplied with an instruction.
// The view is only valid for the duration of a single execution; programs
// must not retain it across invocations.
type Account interface {
	// Key returns the account's address.
	Key() codec.Pubkey

	// Owner returns the identity of the program that owns the account's
	// data. Only the owner may mutate it.
	Owner() codec.Pubkey

	// IsSigner reports whether the account authorized the enclosing
	// transaction.
	IsSigner() bool

	// IsWritable reports whether the enclosing transaction marked the
	// account as mutable.
	IsWritable() bool

	// Data returns the account's stored bytes. A fresh account has no data
	// until space is allocated for it.
	Data() []byte

	// SetData replaces the account's stored bytes. The new encoding must
	// fit the allocated space exactly.
	SetData([]byte) error
}

// Allocator is the capability the host supplies for creating accounts. It
// bundles account creation with the host's rent model so a program can fund
// new accounts to the required minimum balance.
type Allocator interface {
	// MinimumBalance returns the lamports an account with [space] bytes of
	// data must hold to stay alive under the host's rent model.
	MinimumBalance(space uint64) uint64

	// CreateAccount allocates a new account of [space] zeroed bytes owned
	// by [owner], funding it with [lamports] debited from [payer]. Both
	// [payer] and [newAccount] must have signed the enclosing transaction
	// and be writable.
	CreateAccount(ctx context.Context, payer codec.Pubkey, newAccount codec.Pubkey, lamports uint64, space uint64, owner codec.Pubkey) error
}
