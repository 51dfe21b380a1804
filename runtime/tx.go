// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"errors"
	"slices"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/state"
)

type ledgerEntry struct {
	acct  *chain.Account
	dirty bool
}

// txContext is the overlay one transaction executes against. Nothing it
// touches reaches the database until the bank commits the whole
// transaction; dropping it rolls everything back.
type txContext struct {
	bank    *Bank
	entries map[codec.Pubkey]*ledgerEntry

	// signer and writable hold the current instruction's meta flags; an
	// account mentioned twice keeps the stronger grant.
	signer   map[codec.Pubkey]bool
	writable map[codec.Pubkey]bool
}

func newTxContext(bank *Bank) *txContext {
	return &txContext{
		bank:    bank,
		entries: make(map[codec.Pubkey]*ledgerEntry),
	}
}

// entry returns the in-transaction state of [pk], loading it from the
// committed ledger on first touch. Accounts the ledger has never seen start
// as zero-balance system-owned stubs with no data.
func (tc *txContext) entry(pk codec.Pubkey) (*ledgerEntry, error) {
	if e, ok := tc.entries[pk]; ok {
		return e, nil
	}
	acct, err := getAccount(tc.bank.db, pk)
	switch {
	case errors.Is(err, database.ErrNotFound):
		acct = &chain.Account{Owner: consts.SystemProgramID}
	case err != nil:
		return nil, err
	}
	e := &ledgerEntry{acct: acct}
	tc.entries[pk] = e
	return e, nil
}

// beginInstruction builds the account views for one instruction and resets
// the signer/writable grants to its metas.
func (tc *txContext) beginInstruction(ix *chain.Instruction) ([]state.Account, error) {
	tc.signer = make(map[codec.Pubkey]bool, len(ix.Accounts))
	tc.writable = make(map[codec.Pubkey]bool, len(ix.Accounts))
	for _, meta := range ix.Accounts {
		tc.signer[meta.Pubkey] = tc.signer[meta.Pubkey] || meta.IsSigner
		tc.writable[meta.Pubkey] = tc.writable[meta.Pubkey] || meta.IsWritable
	}
	views := make([]state.Account, len(ix.Accounts))
	for i, meta := range ix.Accounts {
		e, err := tc.entry(meta.Pubkey)
		if err != nil {
			return nil, err
		}
		views[i] = &accountView{
			entry:      e,
			key:        meta.Pubkey,
			isSigner:   tc.signer[meta.Pubkey],
			isWritable: tc.writable[meta.Pubkey],
		}
	}
	return views, nil
}

// commit writes every dirty entry through [db].
func (tc *txContext) commit(db database.KeyValueWriter) error {
	for pk, e := range tc.entries {
		if !e.dirty {
			continue
		}
		if err := setAccount(db, pk, e.acct); err != nil {
			return err
		}
	}
	return nil
}

var _ state.Account = (*accountView)(nil)

// accountView is the per-instruction view a program receives. Views sharing
// a pubkey alias the same entry, so a write through one is visible through
// the others.
type accountView struct {
	entry      *ledgerEntry
	key        codec.Pubkey
	isSigner   bool
	isWritable bool
}

func (v *accountView) Key() codec.Pubkey {
	return v.key
}

func (v *accountView) Owner() codec.Pubkey {
	return v.entry.acct.Owner
}

func (v *accountView) IsSigner() bool {
	return v.isSigner
}

func (v *accountView) IsWritable() bool {
	return v.isWritable
}

func (v *accountView) Data() []byte {
	return v.entry.acct.Data
}

func (v *accountView) SetData(data []byte) error {
	if !v.isWritable {
		return ErrAccountNotWritable
	}
	if len(data) != len(v.entry.acct.Data) {
		return ErrInvalidDataLength
	}
	v.entry.acct.Data = slices.Clone(data)
	v.entry.dirty = true
	return nil
}
