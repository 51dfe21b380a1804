// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "github.com/ava-labs/countervm/codec"

const (
	Name = "countervm"

	// LamportsPerSol is the number of lamports in one SOL.
	LamportsPerSol uint64 = 1_000_000_000
)

// SystemProgramID is the identity of the host's account allocator. Accounts
// that have never been assigned to a program are owned by it. Its base58
// form is the all-zeros key.
var SystemProgramID = codec.MustParsePubkey("11111111111111111111111111111111")
