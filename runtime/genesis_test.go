// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/countervm/codec"
)

func TestNewGenesisEmpty(t *testing.T) {
	require := require.New(t)

	gen, err := NewGenesis(nil)
	require.NoError(err)
	require.Empty(gen.Allocations)
}

func TestNewGenesisAllocations(t *testing.T) {
	require := require.New(t)

	addr := codec.PubkeyFromSeed("faucet")
	raw := []byte(`{"customAllocation":[{"address":"` + addr.String() + `","balance":1000000000}]}`)

	gen, err := NewGenesis(raw)
	require.NoError(err)
	require.Len(gen.Allocations, 1)
	require.Equal(addr, gen.Allocations[0].Address)
	require.Equal(uint64(1_000_000_000), gen.Allocations[0].Balance)
}

func TestNewGenesisInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformedJSON", raw: `{`},
		{name: "badAddress", raw: `{"customAllocation":[{"address":"0OIl","balance":1}]}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			_, err := NewGenesis([]byte(test.raw))
			require.Error(err)
		})
	}
}

func TestGenesisJSONRoundTrip(t *testing.T) {
	require := require.New(t)

	gen := &Genesis{
		Allocations: []*CustomAllocation{
			{Address: codec.PubkeyFromSeed("faucet"), Balance: 12_345},
		},
	}

	raw, err := json.Marshal(gen)
	require.NoError(err)

	parsed, err := NewGenesis(raw)
	require.NoError(err)
	require.Equal(gen, parsed)
}
