// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package register - the authoritative index of asset records
//
// ids are assigned sequentially from zero; the next id is persisted in
// the count pool so a restart continues the sequence
package register

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/assetrecord"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/storage"
)

// key of the single record in the count pool
var countKey = []byte("count")

// globals for this module
type registerData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	assets storage.Handle
	count  storage.Handle

	// set once during initialise
	initialised bool
}

// global data
var globalData registerData

// Initialise - setup the asset register
func Initialise(assets storage.Handle, count storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if nil == assets || nil == count {
		return fault.DatabaseIsNotSet
	}

	globalData.log = logger.New("register")
	globalData.log.Info("starting…")

	globalData.assets = assets
	globalData.count = count

	globalData.initialised = true
	return nil
}

// Finalise - shut down the asset register
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.assets = nil
	globalData.count = nil
	globalData.initialised = false

	return nil
}

// Create - assign the next id and store a new record
//
// the record's Id field is overwritten with the assigned id
func Create(record *assetrecord.AssetRecord) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	id, _ := globalData.count.GetN(countKey)

	record.Id = id
	packed, err := record.Pack()
	if nil != err {
		return 0, err
	}

	globalData.assets.Put(idKey(id), packed)
	globalData.count.PutN(countKey, id+1)

	globalData.log.Infof("created asset: %d  name: %q", id, record.Name)
	return id, nil
}

// Update - overwrite the stored record for an existing id
func Update(record *assetrecord.AssetRecord) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	count, _ := globalData.count.GetN(countKey)
	if record.Id >= count {
		return fault.AssetNotFound
	}

	packed, err := record.Pack()
	if nil != err {
		return err
	}

	globalData.assets.Put(idKey(record.Id), packed)
	return nil
}

// Get - fetch the record for an id
func Get(id uint64) (*assetrecord.AssetRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	count, _ := globalData.count.GetN(countKey)
	if id >= count {
		return nil, fault.AssetNotFound
	}

	packed := globalData.assets.Get(idKey(id))
	if nil == packed {
		return nil, fault.AssetNotFound
	}

	return assetrecord.Packed(packed).Unpack()
}

// Count - the number of records, also the next id to be assigned
func Count() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0
	}

	count, _ := globalData.count.GetN(countKey)
	return count
}

// Fetch - return up to count records starting from a given id
func Fetch(start uint64, count int) ([]*assetrecord.AssetRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	cursor := globalData.assets.NewFetchCursor()
	if start > 0 {
		cursor.Seek(idKey(start))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]*assetrecord.AssetRecord, 0, len(elements))
	for _, e := range elements {
		record, err := assetrecord.Packed(e.Value).Unpack()
		if nil != err {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// big endian key so the cursor scan is in id order
func idKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
