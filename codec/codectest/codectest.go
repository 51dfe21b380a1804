// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"crypto/rand"

	"github.com/ava-labs/countervm/codec"
)

// NewRandomPubkey returns a random pubkey
// for use during testing
func NewRandomPubkey() (codec.Pubkey, error) {
	b := make([]byte, codec.PubkeyLen)
	if _, err := rand.Read(b); err != nil {
		return codec.EmptyPubkey, err
	}
	return codec.ToPubkey(b)
}
