// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPubkey(t *testing.T) {
	require := require.New(t)

	b := make([]byte, PubkeyLen)
	_, err := rand.Read(b)
	require.NoError(err)

	p, err := ToPubkey(b)
	require.NoError(err)
	require.Equal(b, p.Bytes())
}

func TestToPubkeyInvalidSize(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "nil", input: nil},
		{name: "short", input: make([]byte, PubkeyLen-1)},
		{name: "long", input: make([]byte, PubkeyLen+1)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			_, err := ToPubkey(test.input)
			require.ErrorIs(err, ErrInvalidSize)
		})
	}
}

func TestPubkeyString(t *testing.T) {
	require := require.New(t)

	b := make([]byte, PubkeyLen)
	_, err := rand.Read(b)
	require.NoError(err)
	p, err := ToPubkey(b)
	require.NoError(err)

	parsed, err := ParsePubkey(p.String())
	require.NoError(err)
	require.Equal(p, parsed)
}

func TestParsePubkeyZero(t *testing.T) {
	require := require.New(t)

	// each base58 '1' digit is a leading zero byte
	p, err := ParsePubkey("11111111111111111111111111111111")
	require.NoError(err)
	require.Equal(EmptyPubkey, p)
}

func TestParsePubkeyInvalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "badDigit", input: "0OIl"},
		{name: "empty", input: ""},
		{name: "tooShort", input: "1111111111111111", expected: ErrInvalidSize},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			_, err := ParsePubkey(test.input)
			if test.expected != nil {
				require.ErrorIs(err, test.expected)
				return
			}
			require.Error(err)
		})
	}
}

func TestMustParsePubkeyPanics(t *testing.T) {
	require := require.New(t)
	require.Panics(func() {
		MustParsePubkey("not a pubkey")
	})
}

func TestPubkeyJSON(t *testing.T) {
	require := require.New(t)

	b := make([]byte, PubkeyLen)
	_, err := rand.Read(b)
	require.NoError(err)
	p, err := ToPubkey(b)
	require.NoError(err)

	raw, err := json.Marshal(p)
	require.NoError(err)

	var parsed Pubkey
	require.NoError(json.Unmarshal(raw, &parsed))
	require.Equal(p, parsed)
}

func TestPubkeyFromSeed(t *testing.T) {
	require := require.New(t)

	a := PubkeyFromSeed("counter-program")
	b := PubkeyFromSeed("counter-program")
	c := PubkeyFromSeed("another-program")

	require.Equal(a, b)
	require.NotEqual(a, c)
	require.NotEqual(EmptyPubkey, a)
}
