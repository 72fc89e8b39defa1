// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/counter"
	"github.com/realmark/marketd/market"
	"github.com/realmark/marketd/mode"
	"github.com/realmark/marketd/register"
	"github.com/realmark/marketd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	counter *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Network        string `json:"network"`
	Mode           string `json:"mode"`
	Assets         uint64 `json:"assets"` // total records in the register
	FeeBasisPoints uint64 `json:"feeBasisPoints"`
	RPCs           uint64 `json:"rpcs"`
	Version        string `json:"version"`
	Uptime         string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Network = mode.NetworkName()
	reply.Mode = mode.String()
	reply.Assets = register.Count()
	reply.FeeBasisPoints = market.FeeBasisPoints()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
