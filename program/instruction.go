// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"github.com/near/borsh-go"
)

const (
	initializeCounterTag uint8 = iota
	incrementCounterTag
	decrementCounterTag
)

// Exact encoded sizes per variant. The codec is strict: anything shorter,
// longer, or with an out-of-range tag or option flag is rejected.
const (
	initializeInstructionLen  = 9  // tag + u64
	defaultStepInstructionLen = 2  // tag + absent option flag
	customStepInstructionLen  = 10 // tag + present option flag + u64
)

type InitializeCounter struct {
	InitialValue uint64
}

type IncrementCounter struct {
	Step *uint64 // nil means the default step of 1
}

type DecrementCounter struct {
	Step *uint64 // nil means the default step of 1
}

// CounterInstruction is the program's instruction set: a borsh enum whose
// tag byte selects the variant. An option encodes as a presence flag byte
// followed by the value iff present, all integers little-endian.
type CounterInstruction struct {
	Variant    borsh.Enum `borsh_enum:"true"`
	Initialize InitializeCounter
	Increment  IncrementCounter
	Decrement  DecrementCounter
}

func NewInitialize(initialValue uint64) *CounterInstruction {
	return &CounterInstruction{
		Variant:    borsh.Enum(initializeCounterTag),
		Initialize: InitializeCounter{InitialValue: initialValue},
	}
}

func NewIncrement(step *uint64) *CounterInstruction {
	return &CounterInstruction{
		Variant:   borsh.Enum(incrementCounterTag),
		Increment: IncrementCounter{Step: step},
	}
}

func NewDecrement(step *uint64) *CounterInstruction {
	return &CounterInstruction{
		Variant:   borsh.Enum(decrementCounterTag),
		Decrement: DecrementCounter{Step: step},
	}
}

// Marshal returns the borsh encoding of i.
func (i *CounterInstruction) Marshal() ([]byte, error) {
	return borsh.Serialize(*i)
}

// UnmarshalInstruction decodes an instruction buffer. It has no side
// effects; every malformed input fails with [ErrInvalidInstructionData].
func UnmarshalInstruction(data []byte) (*CounterInstruction, error) {
	if len(data) == 0 {
		return nil, ErrInvalidInstructionData
	}
	switch data[0] {
	case initializeCounterTag:
		if len(data) != initializeInstructionLen {
			return nil, ErrInvalidInstructionData
		}
	case incrementCounterTag, decrementCounterTag:
		switch {
		case len(data) == defaultStepInstructionLen && data[1] == 0:
		case len(data) == customStepInstructionLen && data[1] == 1:
		default:
			return nil, ErrInvalidInstructionData
		}
	default:
		return nil, ErrInvalidInstructionData
	}
	instruction := &CounterInstruction{}
	if err := borsh.Deserialize(instruction, data); err != nil {
		return nil, ErrInvalidInstructionData
	}
	return instruction, nil
}
