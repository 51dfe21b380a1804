// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrMissingSignature      = errors.New("no key for required signer")
	ErrInvalidSignatureCount = errors.New("signature count does not match required signers")
	ErrInvalidSignature      = errors.New("invalid signature")
)
