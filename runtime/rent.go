// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

// accountStorageOverhead is the metadata surcharge: rent is assessed as if
// every account carried this many bytes on top of its data.
const accountStorageOverhead uint64 = 128

const (
	defaultLamportsPerByteYear uint64 = 3_480
	defaultExemptionYears      uint64 = 2
)

// Rent prices account storage. An account funded to MinimumBalance for its
// size is exempt from collection and lives forever.
type Rent struct {
	LamportsPerByteYear uint64 `json:"lamportsPerByteYear"`
	ExemptionYears      uint64 `json:"exemptionYears"`
}

func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: defaultLamportsPerByteYear,
		ExemptionYears:      defaultExemptionYears,
	}
}

// MinimumBalance returns the lamports an account with [space] bytes of data
// must hold to be rent-exempt. Space is capped well below any value that
// could overflow this product.
func (r Rent) MinimumBalance(space uint64) uint64 {
	return (accountStorageOverhead + space) * r.LamportsPerByteYear * r.ExemptionYears
}
