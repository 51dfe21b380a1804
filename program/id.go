// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import "github.com/ava-labs/countervm/codec"

// ID is the well-known identity of the counter program. Hosts
// conventionally register the processor under it, but nothing depends on
// the value: handlers receive the program identity per invocation, and
// alternate hosts may register any key (e.g. one derived with
// [codec.PubkeyFromSeed]).
var ID = codec.MustParsePubkey("3T8DsLJF1UYYq6zzaVrZTPmEckZktdY5dxHWHWeJVS6r")
