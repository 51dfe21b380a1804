// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/near/borsh-go"

	"github.com/ava-labs/countervm/codec"
)

// Account is the ledger record for one address: its lamport balance, the
// program that owns its data, and the data itself.
type Account struct {
	Lamports uint64
	Owner    codec.Pubkey
	Data     []byte
}

// Marshal returns the borsh encoding of a (the at-rest ledger format).
func (a *Account) Marshal() ([]byte, error) {
	return borsh.Serialize(*a)
}

// UnmarshalAccount decodes a ledger record.
func UnmarshalAccount(data []byte) (*Account, error) {
	a := &Account{}
	if err := borsh.Deserialize(a, data); err != nil {
		return nil, err
	}
	return a, nil
}
