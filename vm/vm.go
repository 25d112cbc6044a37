// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ava-labs/assetvault/actions"
	"github.com/ava-labs/assetvault/chain"
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/config"
	"github.com/ava-labs/assetvault/event"
	"github.com/ava-labs/assetvault/identity"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/storage"
	"github.com/ava-labs/assetvault/token"
)

// VM serializes transactions against a single state database. At most one
// transaction executes at a time, so every operation observes the writes of
// the ones accepted before it.
type VM struct {
	l sync.RWMutex

	rules     chain.Rules
	db        state.Database
	processor *chain.Processor

	log      logging.Logger
	tracer   trace.Tracer
	registry *prometheus.Registry
	metrics  *metrics

	tokenProgram  token.Program
	clock         *mockable.Clock
	subscriptions []event.Subscription[*chain.Result]
}

func New(
	cfg *config.Config,
	db state.Database,
	log logging.Logger,
	tracer trace.Tracer,
	registry *prometheus.Registry,
	opts ...Option,
) (*VM, error) {
	vm := &VM{
		db:           db,
		log:          log,
		tracer:       tracer,
		registry:     registry,
		tokenProgram: token.Standard{},
		clock:        &mockable.Clock{},
	}
	for _, opt := range opts {
		opt(vm)
	}

	// Derivation failures are configuration errors, so surface them before
	// accepting any transaction.
	vault, bump, err := identity.VaultAddress(cfg.GetProgramID())
	if err != nil {
		return nil, err
	}
	vm.metrics, err = newMetrics(registry)
	if err != nil {
		return nil, err
	}
	vm.rules = &chain.StaticRules{
		ProgramID:      cfg.GetProgramID(),
		TokenProgram:   vm.tokenProgram,
		ValidityWindow: cfg.ValidityWindow,
	}
	vm.processor = chain.NewProcessor(vm.rules, db)
	vm.log.Info("vm initialized",
		zap.Stringer("programID", cfg.GetProgramID()),
		zap.Stringer("vault", vault),
		zap.Uint8("bump", bump),
	)
	return vm, nil
}

func (vm *VM) Rules() chain.Rules {
	return vm.rules
}

func (vm *VM) Registry() *prometheus.Registry {
	return vm.registry
}

// Now is the timestamp (in milliseconds) transaction expiries are checked
// against.
func (vm *VM) Now() int64 {
	return vm.clock.Time().UnixMilli()
}

// Submit executes [tx]. It returns an error, and leaves state untouched,
// unless every action of [tx] succeeds.
func (vm *VM) Submit(ctx context.Context, tx *chain.Transaction) (*chain.Result, error) {
	ctx, span := vm.tracer.Start(ctx, "VM.Submit")
	defer span.End()
	span.SetAttributes(
		attribute.Stringer("txID", tx.ID()),
		attribute.Int("actions", len(tx.Actions)),
	)

	vm.l.Lock()
	defer vm.l.Unlock()

	start := time.Now()
	result, err := vm.processor.Execute(ctx, tx, vm.Now())
	vm.metrics.executeLatency.Observe(float64(time.Since(start)))
	if err != nil {
		vm.metrics.txsRejected.Inc()
		vm.log.Debug("transaction rejected",
			zap.Stringer("txID", tx.ID()),
			zap.Error(err),
		)
		return nil, err
	}
	vm.metrics.txsAccepted.Inc()
	vm.logResult(result)

	if err := event.NotifyAll(ctx, result, vm.subscriptions...); err != nil {
		vm.log.Warn("failed to notify subscribers",
			zap.Stringer("txID", result.TxID),
			zap.Error(err),
		)
	}
	return result, nil
}

// SubmitBytes decodes and executes a signed transaction.
func (vm *VM) SubmitBytes(ctx context.Context, b []byte) (*chain.Result, error) {
	tx, err := chain.UnmarshalTxBytes(b, ActionParser, AuthParser)
	if err != nil {
		return nil, err
	}
	return vm.Submit(ctx, tx)
}

func (vm *VM) logResult(result *chain.Result) {
	for _, output := range result.Outputs {
		switch o := output.(type) {
		case *actions.InitializeVaultResult:
			vm.metrics.vaultsInitialized.Inc()
			vm.log.Info("vault initialized",
				zap.Stringer("vault", o.Vault),
				zap.Stringer("manager", o.Manager),
			)
		case *actions.DepositTokensResult:
			vm.metrics.deposited.Add(float64(o.Amount))
			vm.log.Info("tokens deposited",
				zap.Stringer("depositor", result.Actor),
				zap.Uint64("amount", o.Amount),
				zap.Uint64("vaultBalance", o.VaultBalance),
			)
		case *actions.WithdrawTokensResult:
			vm.metrics.withdrawn.Add(float64(o.Amount))
			vm.log.Info("tokens withdrawn",
				zap.Stringer("manager", result.Actor),
				zap.Uint64("amount", o.Amount),
				zap.Uint64("vaultBalance", o.VaultBalance),
			)
		default:
			vm.log.Debug("action executed",
				zap.Stringer("txID", result.TxID),
				zap.Uint8("typeID", output.GetTypeID()),
			)
		}
	}
}

// VaultAddress derives the vault address under the configured program ID.
func (vm *VM) VaultAddress() (codec.Address, uint8, error) {
	return identity.VaultAddress(vm.rules.GetProgramID())
}

func (vm *VM) GetVault(ctx context.Context) (*storage.VaultRecord, bool, error) {
	vault, _, err := vm.VaultAddress()
	if err != nil {
		return nil, false, err
	}

	vm.l.RLock()
	defer vm.l.RUnlock()

	return storage.GetVault(ctx, vm.db, vault)
}

func (vm *VM) GetTokenAccount(ctx context.Context, addr codec.Address) (*storage.TokenAccount, bool, error) {
	vm.l.RLock()
	defer vm.l.RUnlock()

	return storage.GetTokenAccount(ctx, vm.db, addr)
}

func (vm *VM) GetMint(ctx context.Context, addr codec.Address) (*storage.Mint, bool, error) {
	vm.l.RLock()
	defer vm.l.RUnlock()

	return storage.GetMint(ctx, vm.db, addr)
}

// Close releases the subscriptions, the tracer, and the database if it can
// be closed.
func (vm *VM) Close() error {
	vm.l.Lock()
	defer vm.l.Unlock()

	errs := []error{
		event.CloseAll(vm.subscriptions...),
		vm.tracer.Close(),
	}
	if closer, ok := vm.db.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}
