// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/near/borsh-go"
)

// CounterAccountSize is the exact byte size of an encoded CounterAccount:
// one little-endian u64, no header, no version tag.
const CounterAccountSize = 8

// CounterAccount is the entire state the counter program persists for one
// counter: a single unsigned 64 bit value.
type CounterAccount struct {
	Count uint64
}

// Marshal returns the borsh encoding of c (8 bytes, little-endian).
func (c *CounterAccount) Marshal() ([]byte, error) {
	return borsh.Serialize(*c)
}

// UnmarshalCounterAccount decodes a stored counter record. The buffer must
// be exactly [CounterAccountSize] bytes.
func UnmarshalCounterAccount(data []byte) (*CounterAccount, error) {
	if len(data) != CounterAccountSize {
		return nil, ErrInvalidRecord
	}
	c := &CounterAccount{}
	if err := borsh.Deserialize(c, data); err != nil {
		return nil, ErrInvalidRecord
	}
	return c, nil
}
