// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client RPC interface to the marketplace daemon
//
// a TLS jsonrpc endpoint exposing the Market, Asset, Owner and Node
// services
package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/counter"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/rpc/listeners"
	"github.com/realmark/marketd/rpc/server"
)

// counts the connected RPC clients
var connectionCountRPC counter.Counter

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start serving client RPC connections
func Initialise(rpcConfiguration *listeners.RPCConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := listeners.NewTLSConfiguration(
		rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		log.Errorf("certificate error: %s", err)
		return err
	}

	rpcListener, err := listeners.NewRPCListener(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the RPC subsystem
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
