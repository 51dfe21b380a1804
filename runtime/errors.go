// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	ErrUnknownProgram          = errors.New("unknown program")
	ErrInsufficientFundsForFee = errors.New("insufficient funds for fee")
	ErrMissingSignature        = errors.New("missing required signature")
	ErrAccountNotWritable      = errors.New("account is not writable")
	ErrAccountAlreadyInUse     = errors.New("account already in use")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrInvalidDataLength       = errors.New("invalid account data length")
)
