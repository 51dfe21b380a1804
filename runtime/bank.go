// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/mr-tron/base58"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/countervm/chain"
	"github.com/ava-labs/countervm/codec"
	"github.com/ava-labs/countervm/consts"
	"github.com/ava-labs/countervm/crypto/ed25519"
	"github.com/ava-labs/countervm/state"
)

// Program is on-chain logic the bank can invoke. Implementations must be
// stateless between calls: each Execute is one transition over the account
// views it is handed, and any returned error aborts the whole transaction.
type Program interface {
	Execute(
		ctx context.Context,
		alloc state.Allocator,
		programID codec.Pubkey,
		accounts []state.Account,
		instructionData []byte,
	) error
}

// Bank is a single-node host runtime: it verifies transactions, charges
// fees, runs registered programs against an overlay of the ledger, and
// commits each transaction's writes atomically. The lock serializes
// submissions, which provides the one-writer-per-account guarantee programs
// rely on.
type Bank struct {
	log     logging.Logger
	metrics *metrics
	config  Config
	db      database.Database

	lock     sync.Mutex
	programs map[codec.Pubkey]Program
}

func New(
	log logging.Logger,
	registry prometheus.Registerer,
	config Config,
	gen *Genesis,
	db database.Database,
) (*Bank, error) {
	m, err := newMetrics(registry)
	if err != nil {
		return nil, err
	}
	b := &Bank{
		log:      log,
		metrics:  m,
		config:   config,
		db:       db,
		programs: make(map[codec.Pubkey]Program),
	}
	if err := b.applyGenesis(gen); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bank) applyGenesis(gen *Genesis) error {
	if gen == nil {
		return nil
	}
	applied, err := b.db.Has(genesisKey)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	batch := b.db.NewBatch()
	supply := uint64(0)
	for _, alloc := range gen.Allocations {
		supply, err = smath.Add64(supply, alloc.Balance)
		if err != nil {
			return err
		}
		acct := &chain.Account{Lamports: alloc.Balance, Owner: consts.SystemProgramID}
		if err := setAccount(batch, alloc.Address, acct); err != nil {
			return err
		}
		b.log.Info("applied genesis allocation",
			zap.Stringer("address", alloc.Address),
			zap.Uint64("balance", alloc.Balance),
		)
	}
	if err := batch.Put(genesisKey, binary.BigEndian.AppendUint64(nil, supply)); err != nil {
		return err
	}
	return batch.Write()
}

// RegisterProgram makes [p] invokable under [id]. Registering the same id
// again replaces the program.
func (b *Bank) RegisterProgram(id codec.Pubkey, p Program) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.programs[id] = p
	b.log.Info("registered program", zap.Stringer("program", id))
}

// SubmitTransaction verifies, executes, and commits [tx], returning its id.
// On an execution failure nothing the transaction wrote survives, but the
// fee is still charged to the payer.
func (b *Bank) SubmitTransaction(ctx context.Context, tx *chain.Transaction) (string, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.metrics.txsSubmitted.Inc()

	if err := tx.Verify(); err != nil {
		b.metrics.txsRejected.Inc()
		return "", err
	}
	txID := tx.ID()

	fee, err := smath.Mul64(b.config.FeePerSignature, uint64(len(tx.Signatures)))
	if err != nil {
		b.metrics.txsRejected.Inc()
		return txID, err
	}

	tc := newTxContext(b)
	payerEntry, err := tc.entry(tx.Message.Payer)
	if err != nil {
		b.metrics.txsRejected.Inc()
		return txID, err
	}
	remaining, err := smath.Sub(payerEntry.acct.Lamports, fee)
	if err != nil {
		b.metrics.txsRejected.Inc()
		return txID, ErrInsufficientFundsForFee
	}
	payerEntry.acct.Lamports = remaining
	payerEntry.dirty = true

	if execErr := b.execute(ctx, tc, tx); execErr != nil {
		// The overlay is discarded, but the fee is still owed: re-apply it
		// against the committed ledger.
		if err := b.chargeFee(tx.Message.Payer, fee); err != nil {
			return txID, err
		}
		b.metrics.txsRejected.Inc()
		b.metrics.feesCollected.Add(float64(fee))
		b.log.Info("transaction rejected",
			zap.String("tx", txID),
			zap.Error(execErr),
		)
		return txID, execErr
	}

	batch := b.db.NewBatch()
	if err := tc.commit(batch); err != nil {
		return txID, err
	}
	if err := batch.Write(); err != nil {
		return txID, err
	}
	b.metrics.txsAccepted.Inc()
	b.metrics.feesCollected.Add(float64(fee))
	b.log.Info("transaction accepted",
		zap.String("tx", txID),
		zap.Int("instructions", len(tx.Message.Instructions)),
		zap.Uint64("fee", fee),
	)
	return txID, nil
}

func (b *Bank) execute(ctx context.Context, tc *txContext, tx *chain.Transaction) error {
	for i := range tx.Message.Instructions {
		ix := &tx.Message.Instructions[i]
		p, ok := b.programs[ix.ProgramID]
		if !ok {
			return fmt.Errorf("instruction %d: %w", i, ErrUnknownProgram)
		}
		accounts, err := tc.beginInstruction(ix)
		if err != nil {
			return err
		}
		if err := p.Execute(ctx, tc, ix.ProgramID, accounts, ix.Data); err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return nil
}

// chargeFee debits [fee] from the committed state of [payer], bypassing any
// overlay.
func (b *Bank) chargeFee(payer codec.Pubkey, fee uint64) error {
	acct, err := getAccount(b.db, payer)
	if errors.Is(err, database.ErrNotFound) {
		acct = &chain.Account{Owner: consts.SystemProgramID}
	} else if err != nil {
		return err
	}
	acct.Lamports, err = smath.Sub(acct.Lamports, fee)
	if err != nil {
		return err
	}
	return setAccount(b.db, payer, acct)
}

// RequestAirdrop credits [lamports] to [to], creating the account if
// needed. Airdrops are host-initiated and carry no signature, so the
// returned id is freshly minted.
func (b *Bank) RequestAirdrop(ctx context.Context, to codec.Pubkey, lamports uint64) (string, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	acct, err := getAccount(b.db, to)
	if errors.Is(err, database.ErrNotFound) {
		acct = &chain.Account{Owner: consts.SystemProgramID}
	} else if err != nil {
		return "", err
	}
	acct.Lamports, err = smath.Add64(acct.Lamports, lamports)
	if err != nil {
		return "", err
	}
	if err := setAccount(b.db, to, acct); err != nil {
		return "", err
	}
	txID, err := randomTxID()
	if err != nil {
		return "", err
	}
	b.log.Info("airdropped",
		zap.Stringer("to", to),
		zap.Uint64("lamports", lamports),
		zap.String("tx", txID),
	)
	return txID, nil
}

// GetAccount returns the committed record for [pk], or
// [database.ErrNotFound] if the ledger has never seen it.
func (b *Bank) GetAccount(ctx context.Context, pk codec.Pubkey) (*chain.Account, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	return getAccount(b.db, pk)
}

// GetBalance returns the committed lamport balance of [pk]; unknown
// accounts have balance zero.
func (b *Bank) GetBalance(ctx context.Context, pk codec.Pubkey) (uint64, error) {
	acct, err := b.GetAccount(ctx, pk)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return acct.Lamports, nil
}

func randomTxID() (string, error) {
	b := make([]byte, ed25519.SignatureLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base58.Encode(b), nil
}
