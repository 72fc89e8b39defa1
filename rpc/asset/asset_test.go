// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/realmark/marketd/assetrecord"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/register"
	"github.com/realmark/marketd/rpc/asset"
	"github.com/realmark/marketd/rpc/fixtures"
	"github.com/realmark/marketd/storage"
)

func setup(t *testing.T) {
	fixtures.SetupTestLogger()

	err := storage.Initialise(fixtures.DatabaseName, storage.ReadWrite)
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
	fixtures.TeardownTestLogger()
}

func createRecords(t *testing.T, count int) {
	for i := 0; i < count; i += 1 {
		record := &assetrecord.AssetRecord{
			URI:        fmt.Sprintf("https://example.com/deeds/%d", i),
			Name:       fmt.Sprintf("asset-%d", i),
			Location:   "somewhere",
			SalePrice:  1000,
			Properties: []string{"deed"},
			Lister:     fixtures.ListerAccount(),
			State:      assetrecord.Listed,
		}
		_, err := register.Create(record)
		assert.Nil(t, err, "create error")
	}
}

func TestAssetGet(t *testing.T) {
	setup(t)
	defer teardown(t)

	createRecords(t, 3)

	service := asset.New(logger.New("test"))

	var reply asset.GetReply
	err := service.Get(&asset.GetArguments{Id: 1}, &reply)
	assert.Nil(t, err, "get error")
	assert.Equal(t, uint64(1), reply.Asset.Id, "wrong id")
	assert.Equal(t, "asset-1", reply.Asset.Name, "wrong name")

	err = service.Get(&asset.GetArguments{Id: 3}, &reply)
	assert.Equal(t, fault.AssetNotFound, err, "wrong error")
}

func TestAssetList(t *testing.T) {
	setup(t)
	defer teardown(t)

	createRecords(t, 7)

	service := asset.New(logger.New("test"))

	var reply asset.ListReply
	err := service.List(&asset.ListArguments{Start: 0, Count: 3}, &reply)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 3, len(reply.Assets), "wrong page size")
	assert.Equal(t, uint64(3), reply.Next, "wrong next")

	err = service.List(&asset.ListArguments{Start: reply.Next, Count: 100}, &reply)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 4, len(reply.Assets), "wrong page size")
	assert.Equal(t, uint64(3), reply.Assets[0].Id, "wrong first id")
	assert.Equal(t, uint64(7), reply.Next, "wrong next")

	// an oversized count is rejected
	err = service.List(&asset.ListArguments{Start: 0, Count: asset.MaximumListCount + 1}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")
}
