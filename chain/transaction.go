// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"

	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/crypto/ed25519"
)

// AccountMeta names one account an instruction touches and how the caller
// vouches for it.
type AccountMeta struct {
	Pubkey     codec.Pubkey
	IsSigner   bool
	IsWritable bool
}

// Instruction is one program invocation: the program to run, the ordered
// accounts it may read or write, and its opaque input bytes. Account order
// is part of each program's contract.
type Instruction struct {
	ProgramID codec.Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// Message is the signed portion of a transaction. The payer funds the
// transaction fee and is always the first required signer.
type Message struct {
	Payer        codec.Pubkey
	Instructions []Instruction
}

// Marshal returns the borsh encoding of m. These are the bytes signatures
// commit to.
func (m *Message) Marshal() ([]byte, error) {
	return borsh.Serialize(*m)
}

// RequiredSigners returns the distinct identities that must sign the
// message: the payer first, then every signer meta in first-appearance
// order.
func (m *Message) RequiredSigners() []codec.Pubkey {
	signers := []codec.Pubkey{m.Payer}
	seen := map[codec.Pubkey]bool{m.Payer: true}
	for _, ix := range m.Instructions {
		for _, meta := range ix.Accounts {
			if !meta.IsSigner || seen[meta.Pubkey] {
				continue
			}
			seen[meta.Pubkey] = true
			signers = append(signers, meta.Pubkey)
		}
	}
	return signers
}

// Transaction is a message plus the signatures authorizing it. Signature i
// belongs to RequiredSigners()[i].
type Transaction struct {
	Message    Message
	Signatures []ed25519.Signature
}

func NewTransaction(message Message) *Transaction {
	return &Transaction{Message: message}
}

// Sign populates the transaction's signatures from the given private keys.
// Keys may be passed in any order; each required signer must have a
// matching key.
func (t *Transaction) Sign(keys ...ed25519.PrivateKey) error {
	msg, err := t.Message.Marshal()
	if err != nil {
		return err
	}
	byPubkey := make(map[codec.Pubkey]ed25519.PrivateKey, len(keys))
	for _, key := range keys {
		byPubkey[codec.Pubkey(key.PublicKey())] = key
	}
	signers := t.Message.RequiredSigners()
	t.Signatures = make([]ed25519.Signature, len(signers))
	for i, signer := range signers {
		key, ok := byPubkey[signer]
		if !ok {
			return ErrMissingSignature
		}
		t.Signatures[i] = ed25519.Sign(msg, key)
	}
	return nil
}

// Verify checks that every required signer authorized the message.
func (t *Transaction) Verify() error {
	signers := t.Message.RequiredSigners()
	if len(t.Signatures) != len(signers) {
		return ErrInvalidSignatureCount
	}
	msg, err := t.Message.Marshal()
	if err != nil {
		return err
	}
	for i, signer := range signers {
		if !ed25519.Verify(msg, ed25519.PublicKey(signer), t.Signatures[i]) {
			return ErrInvalidSignature
		}
	}
	return nil
}

// ID returns the transaction's identifier: the base58 rendering of its
// first signature. Unsigned transactions have no ID.
func (t *Transaction) ID() string {
	if len(t.Signatures) == 0 {
		return ""
	}
	return base58.Encode(t.Signatures[0][:])
}
