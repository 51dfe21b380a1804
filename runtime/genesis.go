// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/countervm/codec"
)

type CustomAllocation struct {
	Address codec.Pubkey `json:"address"` // base58
	Balance uint64       `json:"balance"`
}

// Genesis seeds the ledger on a bank's first start against a fresh
// database. Reapplying it on later starts is a no-op.
type Genesis struct {
	Allocations []*CustomAllocation `json:"customAllocation"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{}
}

func NewGenesis(b []byte) (*Genesis, error) {
	g := DefaultGenesis()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal genesis %s: %w", string(b), err)
		}
	}
	return g, nil
}
