// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/assetrecord"
	"github.com/realmark/marketd/register"
	"github.com/realmark/marketd/rpc/ratelimit"
)

// Asset - type for the RPC
type Asset struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	rateLimitAsset = 200
	rateBurstAsset = 100

	// limit for list count
	MaximumListCount = 100
)

// New - create the asset service
func New(log *logger.L) *Asset {
	return &Asset{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAsset, rateBurstAsset),
	}
}

// Asset.Get
// ---------

// GetArguments - arguments for a snapshot request
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// GetReply - the record snapshot
type GetReply struct {
	Asset *assetrecord.AssetRecord `json:"asset"`
}

// Get - fetch one asset record
func (asset *Asset) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(asset.Limiter); nil != err {
		return err
	}

	log := asset.Log
	log.Infof("Asset.Get: %+v", arguments)

	record, err := register.Get(arguments.Id)
	if nil != err {
		return err
	}

	reply.Asset = record
	return nil
}

// Asset.List
// ----------

// ListArguments - arguments for an ordered scan
type ListArguments struct {
	Start uint64 `json:"start,string"` // first id
	Count int    `json:"count"`        // number of records
}

// ListReply - one page of the ordered scan
type ListReply struct {
	Next   uint64                     `json:"next,string"` // start value for the next call
	Assets []*assetrecord.AssetRecord `json:"assets"`
}

// List - fetch a page of asset records in id order
func (asset *Asset) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(asset.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	log := asset.Log
	log.Infof("Asset.List: %+v", arguments)

	records, err := register.Fetch(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Assets = records
	if n := len(records); n > 0 {
		reply.Next = records[n-1].Id + 1
	} else {
		reply.Next = arguments.Start
	}

	return nil
}
