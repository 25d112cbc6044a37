// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	txsAccepted prometheus.Counter
	txsRejected prometheus.Counter

	vaultsInitialized prometheus.Counter
	deposited         prometheus.Counter
	withdrawn         prometheus.Counter

	executeLatency metric.Averager
}

func newMetrics(r *prometheus.Registry) (*metrics, error) {
	executeLatency, err := metric.NewAverager(
		"vm_execute_latency",
		"time spent executing a transaction",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &metrics{
		txsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "txs_accepted",
			Help:      "number of accepted transactions",
		}),
		txsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vm",
			Name:      "txs_rejected",
			Help:      "number of rejected transactions",
		}),
		vaultsInitialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vault",
			Name:      "initialized",
			Help:      "number of vault initializations",
		}),
		deposited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vault",
			Name:      "deposited",
			Help:      "amount of tokens deposited into the vault",
		}),
		withdrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vault",
			Name:      "withdrawn",
			Help:      "amount of tokens withdrawn from the vault",
		}),
		executeLatency: executeLatency,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsAccepted),
		r.Register(m.txsRejected),
		r.Register(m.vaultsInitialized),
		r.Register(m.deposited),
		r.Register(m.withdrawn),
	)
	return m, errs.Err
}
