// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"

	smath "github.com/ava-labs/avalanchego/utils/math"
	"go.uber.org/zap"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/state"
)

// maxPermittedDataLength caps account data size at 10 MiB.
const maxPermittedDataLength uint64 = 10 * 1024 * 1024

var _ state.Allocator = (*txContext)(nil)

func (tc *txContext) MinimumBalance(space uint64) uint64 {
	return tc.bank.config.Rent.MinimumBalance(space)
}

// CreateAccount is the system program's account creation: it debits
// [lamports] from [payer], credits them to [newAccount], assigns ownership
// to [owner], and allocates [space] zeroed bytes. The new account must be
// untouched (no balance, no data, system-owned) and both accounts must be
// instruction signers marked writable.
func (tc *txContext) CreateAccount(
	ctx context.Context,
	payer codec.Pubkey,
	newAccount codec.Pubkey,
	lamports uint64,
	space uint64,
	owner codec.Pubkey,
) error {
	if space > maxPermittedDataLength {
		return ErrInvalidDataLength
	}
	if !tc.signer[payer] || !tc.signer[newAccount] {
		return ErrMissingSignature
	}
	if !tc.writable[payer] || !tc.writable[newAccount] {
		return ErrAccountNotWritable
	}

	newEntry, err := tc.entry(newAccount)
	if err != nil {
		return err
	}
	if newEntry.acct.Lamports > 0 || len(newEntry.acct.Data) > 0 || newEntry.acct.Owner != consts.SystemProgramID {
		return ErrAccountAlreadyInUse
	}

	payerEntry, err := tc.entry(payer)
	if err != nil {
		return err
	}
	remaining, err := smath.Sub(payerEntry.acct.Lamports, lamports)
	if err != nil {
		return ErrInsufficientFunds
	}
	payerEntry.acct.Lamports = remaining
	payerEntry.dirty = true

	newEntry.acct.Lamports = lamports
	newEntry.acct.Owner = owner
	newEntry.acct.Data = make([]byte, space)
	newEntry.dirty = true

	tc.bank.metrics.accountsCreated.Inc()
	tc.bank.log.Debug("created account",
		zap.Stringer("account", newAccount),
		zap.Stringer("owner", owner),
		zap.Uint64("lamports", lamports),
		zap.Uint64("space", space),
	)
	return nil
}
