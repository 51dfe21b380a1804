// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

const defaultFeePerSignature uint64 = 5_000

type Config struct {
	// FeePerSignature is charged to the payer per transaction signature,
	// whether or not the transaction executes successfully.
	FeePerSignature uint64 `json:"feePerSignature"`
	Rent            Rent   `json:"rent"`
}

func NewDefaultConfig() Config {
	return Config{
		FeePerSignature: defaultFeePerSignature,
		Rent:            DefaultRent(),
	}
}
