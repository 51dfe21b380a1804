// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstructionMarshal(t *testing.T) {
	five := uint64(5)
	three := uint64(3)

	tests := []struct {
		name        string
		instruction *CounterInstruction
		expected    []byte
	}{
		{
			name:        "initialize",
			instruction: NewInitialize(42),
			expected:    []byte{0, 42, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:        "incrementDefaultStep",
			instruction: NewIncrement(nil),
			expected:    []byte{1, 0},
		},
		{
			name:        "incrementCustomStep",
			instruction: NewIncrement(&five),
			expected:    []byte{1, 1, 5, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:        "decrementDefaultStep",
			instruction: NewDecrement(nil),
			expected:    []byte{2, 0},
		},
		{
			name:        "decrementCustomStep",
			instruction: NewDecrement(&three),
			expected:    []byte{2, 1, 3, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			raw, err := test.instruction.Marshal()
			require.NoError(err)
			require.Equal(test.expected, raw)

			parsed, err := UnmarshalInstruction(raw)
			require.NoError(err)
			require.Equal(test.instruction, parsed)
		})
	}
}

func TestUnmarshalInstructionInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "unknownTag", data: []byte{3, 0}},
		{name: "initializeTruncated", data: []byte{0, 42, 0, 0, 0, 0, 0, 0}},
		{name: "initializeTrailingByte", data: []byte{0, 42, 0, 0, 0, 0, 0, 0, 0, 0}},
		{name: "incrementMissingFlag", data: []byte{1}},
		{name: "incrementBadFlag", data: []byte{1, 2}},
		{name: "incrementTruncatedStep", data: []byte{1, 1, 5, 0, 0, 0, 0, 0}},
		{name: "incrementTrailingByte", data: []byte{1, 0, 0}},
		{name: "decrementBadFlag", data: []byte{2, 9}},
		{name: "decrementMissingStep", data: []byte{2, 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			_, err := UnmarshalInstruction(test.data)
			require.ErrorIs(err, ErrInvalidInstructionData)
		})
	}
}
