// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - per-account index of listed assets
//
// each account has a dense sub-sequence numbered from zero; the key of
// an index entry is owner ⧺ big endian N and its value is the asset id
package ownership

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/storage"
)

// Record - one entry of an account's asset index
type Record struct {
	N       uint64 `json:"n,string"`
	AssetId uint64 `json:"assetId,string"`
}

// globals for this module
type ownershipData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	ownerList      storage.Handle
	ownerNextCount storage.Handle

	// set once during initialise
	initialised bool
}

// global data
var globalData ownershipData

// Initialise - setup the ownership index
func Initialise(ownerList storage.Handle, ownerNextCount storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if nil == ownerList || nil == ownerNextCount {
		return fault.DatabaseIsNotSet
	}

	globalData.log = logger.New("ownership")
	globalData.log.Info("starting…")

	globalData.ownerList = ownerList
	globalData.ownerNextCount = ownerNextCount

	globalData.initialised = true
	return nil
}

// Finalise - shut down the ownership index
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.ownerList = nil
	globalData.ownerNextCount = nil
	globalData.initialised = false

	return nil
}

// Link - append an asset id to an account's index
func Link(owner *account.Account, assetId uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == owner {
		return fault.InvalidItem
	}

	ownerKey := owner.Bytes()

	n, _ := globalData.ownerNextCount.GetN(ownerKey)

	entryKey := append(append([]byte{}, ownerKey...), numberKey(n)...)
	globalData.ownerList.PutN(entryKey, assetId)
	globalData.ownerNextCount.PutN(ownerKey, n+1)

	globalData.log.Debugf("linked asset: %d to owner: %s at: %d", assetId, owner, n)
	return nil
}

// CountFor - number of index entries for an account
func CountFor(owner *account.Account) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised || nil == owner {
		return 0
	}

	n, _ := globalData.ownerNextCount.GetN(owner.Bytes())
	return n
}

// ListAssetsFor - return up to count index entries for an account
// starting from sequence number start
func ListAssetsFor(owner *account.Account, start uint64, count int) ([]Record, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == owner {
		return nil, fault.InvalidItem
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	ownerKey := owner.Bytes()

	limit, _ := globalData.ownerNextCount.GetN(ownerKey)

	records := make([]Record, 0, count)
	for n := start; n < limit && len(records) < count; n += 1 {
		entryKey := append(append([]byte{}, ownerKey...), numberKey(n)...)
		assetId, found := globalData.ownerList.GetN(entryKey)
		if !found {
			globalData.log.Criticalf("missing index entry: owner: %s  n: %d", owner, n)
			return nil, fault.AssetNotFound
		}
		records = append(records, Record{
			N:       n,
			AssetId: assetId,
		})
	}

	return records, nil
}

// big endian sequence number so entries sort in order
func numberKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
