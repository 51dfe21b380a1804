// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimumBalance(t *testing.T) {
	tests := []struct {
		name     string
		rent     Rent
		space    uint64
		expected uint64
	}{
		{
			name:     "counterAccount",
			rent:     DefaultRent(),
			space:    8,
			expected: 946_560,
		},
		{
			name:     "zeroSpace",
			rent:     DefaultRent(),
			space:    0,
			expected: 890_880,
		},
		{
			name:     "customRate",
			rent:     Rent{LamportsPerByteYear: 1, ExemptionYears: 1},
			space:    72,
			expected: 200,
		},
		{
			name:     "freeRent",
			rent:     Rent{LamportsPerByteYear: 0, ExemptionYears: 2},
			space:    8,
			expected: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			require.Equal(test.expected, test.rent.MinimumBalance(test.space))
		})
	}
}

func TestNewDefaultConfig(t *testing.T) {
	require := require.New(t)

	config := NewDefaultConfig()
	require.Equal(uint64(5_000), config.FeePerSignature)
	require.Equal(DefaultRent(), config.Rent)
}
