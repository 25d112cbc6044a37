// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ava-labs/assetvault/chain"
	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/config"
	"github.com/ava-labs/assetvault/crypto/ed25519"
	"github.com/ava-labs/assetvault/pebble"
	"github.com/ava-labs/assetvault/trace"
	"github.com/ava-labs/assetvault/utils"
	"github.com/ava-labs/assetvault/vm"
)

const (
	keyFile        = "key.hex"
	databaseFolder = "db"
	logFile        = "vault-cli.log"
	txExpiry       = 30_000 // ms
)

var (
	handlerCfg *config.Config
	handlerVM  *vm.VM
)

func loadConfig() (*config.Config, error) {
	if handlerCfg != nil {
		return handlerCfg, nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	handlerCfg = cfg
	return cfg, nil
}

func newLogger(cfg *config.Config) logging.Logger {
	var (
		w       io.WriteCloser = os.Stderr
		encoder                = logging.Colors.ConsoleEncoder()
	)
	if len(cfg.LogDir) > 0 {
		w = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, logFile),
			MaxSize:    8, // MB
			MaxBackups: 4,
			MaxAge:     14, // days
			Compress:   true,
		}
		encoder = logging.JSON.FileEncoder()
	}
	return logging.NewLogger("vault-cli", logging.NewWrappedCore(cfg.LogLevel, w, encoder))
}

// openVM opens the local database and the vm on top of it. It is closed by
// [closeHandler].
func openVM() (*vm.VM, error) {
	if handlerVM != nil {
		return handlerVM, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg)
	tracer, err := trace.New(&cfg.Trace)
	if err != nil {
		return nil, err
	}
	db, registry, err := pebble.New(filepath.Join(cfg.DataDir, databaseFolder), cfg.Pebble)
	if err != nil {
		return nil, err
	}
	v, err := vm.New(cfg, db, log, tracer, registry)
	if err != nil {
		return nil, errors.Join(err, db.Close(), tracer.Close())
	}
	handlerVM = v
	return v, nil
}

func closeHandler() {
	if handlerVM == nil {
		return
	}
	if err := handlerVM.Close(); err != nil {
		utils.Outf("{{red}}failed to close:{{/}} %v\n", err)
	}
}

func keyPath() (string, error) {
	if len(privateKeyFile) > 0 {
		return privateKeyFile, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.DataDir, keyFile), nil
}

func loadKey() (ed25519.PrivateKey, error) {
	path, err := keyPath()
	if err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return ed25519.EmptyPrivateKey, ErrMissingKey
	}
	if err != nil {
		return ed25519.EmptyPrivateKey, err
	}
	return ed25519.HexToPrivateKey(strings.TrimSpace(string(b)))
}

// parseOwner resolves an owner flag. An empty value is the loaded key and
// "vault" is the vault address.
func parseOwner(v *vm.VM, s string, key codec.Address) (codec.Address, error) {
	switch s {
	case "":
		return key, nil
	case "vault":
		vault, _, err := v.VaultAddress()
		return vault, err
	default:
		return codec.ParseAddress(s)
	}
}

func submit(ctx context.Context, v *vm.VM, factory chain.AuthFactory, acts ...chain.Action) (*chain.Result, error) {
	base := &chain.Base{
		Timestamp: v.Now() + txExpiry,
		Nonce:     uint64(time.Now().UnixNano()),
	}
	tx, err := chain.NewTx(base, acts).Sign(factory, vm.ActionParser, vm.AuthParser)
	if err != nil {
		return nil, err
	}
	result, err := v.Submit(ctx, tx)
	if err != nil {
		return nil, err
	}
	utils.Outf("{{green}}accepted tx:{{/}} %s\n", result.TxID)
	return result, nil
}
