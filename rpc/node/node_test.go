// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/realmark/marketd/counter"
	"github.com/realmark/marketd/mode"
	"github.com/realmark/marketd/network"
	"github.com/realmark/marketd/register"
	"github.com/realmark/marketd/rpc/fixtures"
	"github.com/realmark/marketd/rpc/node"
	"github.com/realmark/marketd/storage"
)

func setup(t *testing.T) {
	fixtures.SetupTestLogger()

	err := mode.Initialise(network.Testing)
	if nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}
	mode.Set(mode.Normal)

	err = storage.Initialise(fixtures.DatabaseName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = register.Initialise(storage.Pool.Assets, storage.Pool.AssetCount)
	if nil != err {
		t.Fatalf("register initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = register.Finalise()
	storage.Finalise()
	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
}

func TestNodeInfo(t *testing.T) {
	setup(t)
	defer teardown(t)

	var connections counter.Counter
	connections.Increment()
	connections.Increment()

	service := node.New(logger.New("test"), time.Now().UTC(), "7.1", &connections)

	var reply node.InfoReply
	err := service.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "info error")

	assert.Equal(t, network.Testing, reply.Network, "wrong network")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(0), reply.Assets, "wrong asset count")
	assert.Equal(t, uint64(2), reply.RPCs, "wrong connection count")
	assert.Equal(t, "7.1", reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "missing uptime")
}
