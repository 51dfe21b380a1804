// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
)

const (
	accountPrefix = 0x0
	genesisPrefix = 0x1
)

// genesisKey marks that genesis allocations were applied; its value is the
// allocated supply.
var genesisKey = []byte{genesisPrefix}

// AccountKey returns the ledger key holding the account record for [pk].
func AccountKey(pk codec.Pubkey) []byte {
	k := make([]byte, 1+codec.PubkeyLen)
	k[0] = accountPrefix
	copy(k[1:], pk[:])
	return k
}

func getAccount(db database.KeyValueReader, pk codec.Pubkey) (*chain.Account, error) {
	raw, err := db.Get(AccountKey(pk))
	if err != nil {
		return nil, err
	}
	return chain.UnmarshalAccount(raw)
}

func setAccount(db database.KeyValueWriter, pk codec.Pubkey, acct *chain.Account) error {
	raw, err := acct.Marshal()
	if err != nil {
		return err
	}
	return db.Put(AccountKey(pk), raw)
}
