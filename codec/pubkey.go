// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/mr-tron/base58"
)

const PubkeyLen = 32

// Pubkey is the 32 byte identity of an account. Program identities and
// account addresses share this type; ownership checks compare them directly.
type Pubkey [PubkeyLen]byte

var EmptyPubkey = Pubkey{}

// ToPubkey returns a Pubkey with the contents of [b].
func ToPubkey(b []byte) (Pubkey, error) {
	if len(b) != PubkeyLen {
		return EmptyPubkey, ErrInvalidSize
	}
	var p Pubkey
	copy(p[:], b)
	return p, nil
}

// PubkeyFromSeed derives a deterministic Pubkey from a seed string. Seeded
// identities are used for well-known programs that are registered under the
// same key on every host.
func PubkeyFromSeed(seed string) Pubkey {
	return Pubkey(hashing.ComputeHash256Array([]byte(seed)))
}

// ParsePubkey parses the base58 representation of a Pubkey.
func ParsePubkey(s string) (Pubkey, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return EmptyPubkey, err
	}
	return ToPubkey(b)
}

// MustParsePubkey parses the base58 representation of a Pubkey and panics on
// malformed input. Reserved for well-known constants.
func MustParsePubkey(s string) Pubkey {
	p, err := ParsePubkey(s)
	if err != nil {
		panic(fmt.Sprintf("invalid pubkey %q: %v", s, err))
	}
	return p
}

func (p Pubkey) Bytes() []byte {
	return p[:]
}

// String implements fmt.Stringer.
func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// MarshalText returns the base58 representation of p.
func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a base58-encoded pubkey.
func (p *Pubkey) UnmarshalText(input []byte) error {
	parsed, err := ParsePubkey(string(input))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
