// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/countervm/consts"
)

type metrics struct {
	txsSubmitted    prometheus.Counter
	txsAccepted     prometheus.Counter
	txsRejected     prometheus.Counter
	accountsCreated prometheus.Counter
	feesCollected   prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		txsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "txs_submitted",
			Help:      "number of transactions submitted to the bank",
		}),
		txsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "txs_accepted",
			Help:      "number of transactions committed successfully",
		}),
		txsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "txs_rejected",
			Help:      "number of transactions rejected",
		}),
		accountsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "accounts_created",
			Help:      "number of accounts created by the system program",
		}),
		feesCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "fees_collected",
			Help:      "total lamports collected as transaction fees",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsSubmitted),
		r.Register(m.txsAccepted),
		r.Register(m.txsRejected),
		r.Register(m.accountsCreated),
		r.Register(m.feesCollected),
	)
	return m, errs.Err
}
