// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"strconv"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/assetrecord"
	"github.com/realmark/marketd/ownership"
	"github.com/realmark/marketd/register"
	"github.com/realmark/marketd/rpc/ratelimit"
)

// Owner - type for the RPC
type Owner struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	rateLimitOwner = 200
	rateBurstOwner = 100

	// limit for count
	MaximumAssetsCount = 100
)

// New - create the owner service
func New(log *logger.L) *Owner {
	return &Owner{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOwner, rateBurstOwner),
	}
}

// AssetsArguments - arguments for RPC
type AssetsArguments struct {
	Owner *account.Account `json:"owner"`        // base58
	Start uint64           `json:"start,string"` // first record number
	Count int              `json:"count"`        // number of records
}

// AssetsReply - result of owner RPC
//
// an account's index holds the assets it listed and the assets it
// bought; the asset table is keyed by decimal id
type AssetsReply struct {
	Next   uint64                              `json:"next,string"` // start value for the next call
	Data   []ownership.Record                  `json:"data"`
	Assets map[string]*assetrecord.AssetRecord `json:"assets"`
}

// Assets - list assets belonging to an account
func (owner *Owner) Assets(arguments *AssetsArguments, reply *AssetsReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumAssetsCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Assets: %+v", arguments)

	ownershipData, err := ownership.ListAssetsFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("ownership: %+v", ownershipData)

	assets := make(map[string]*assetrecord.AssetRecord)
	next := arguments.Start
	for _, r := range ownershipData {
		record, err := register.Get(r.AssetId)
		if nil != err {
			log.Criticalf("missing record for owned asset: %d", r.AssetId)
			return err
		}
		assets[strconv.FormatUint(r.AssetId, 10)] = record
		next = r.N + 1
	}

	reply.Next = next
	reply.Data = ownershipData
	reply.Assets = assets

	return nil
}
