// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import "errors"

var (
	ErrInvalidInstructionData    = errors.New("invalid instruction data")
	ErrAccountAlreadyInitialized = errors.New("account already initialized")
	ErrIncorrectProgramID        = errors.New("incorrect program id")
	ErrUninitializedAccount      = errors.New("uninitialized account")
	// ErrInvalidAccountData reports a corrupt stored record or a failed
	// checked-arithmetic step (overflow or underflow). The cases share
	// one error kind and callers must not distinguish them.
	ErrInvalidAccountData = errors.New("invalid account data")
	ErrNotEnoughAccounts  = errors.New("not enough accounts")
)
