// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/counter"
	"github.com/realmark/marketd/mode"
	"github.com/realmark/marketd/rpc/asset"
	"github.com/realmark/marketd/rpc/market"
	"github.com/realmark/marketd/rpc/node"
	"github.com/realmark/marketd/rpc/owner"
)

// Create - register all services on a fresh rpc server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(market.New(log, mode.Is, mode.IsTesting))
	_ = server.Register(asset.New(log))
	_ = server.Register(owner.New(log))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
