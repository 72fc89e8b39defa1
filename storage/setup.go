// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Assets         *PoolHandle `prefix:"A"`
	AssetCount     *PoolHandle `prefix:"N"`
	OwnerList      *PoolHandle `prefix:"L"`
	OwnerNextCount *PoolHandle `prefix:"D"`
	TokenCustody   *PoolHandle `prefix:"K"`
	FeeLedger      *PoolHandle `prefix:"F"`
	PayoutLedger   *PoolHandle `prefix:"P"`
	Balances       *PoolHandle `prefix:"Q"`
	TestData       *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db    *leveldb.DB
	cache Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	db, version, err := openDB(database+".leveldb", readOnly)
	if nil != err {
		return err
	}
	poolData.db = db
	poolData.cache = newCache()

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	// stamp a fresh database
	if 0 == version && !readOnly {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field to locate its prefix tag
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	ok = true // prevent db close
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()
	dbClose()
}

// must hold poolData lock before calling
func dbClose() {
	if nil != poolData.db {
		if err := poolData.db.Close(); nil != err {
			logger.Criticalf("database close error: %s", err)
		}
		poolData.db = nil
		poolData.cache = nil
	}
}

// IsInitialised - check the database is connected
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}

// open the database and read its version
//
// version is zero for a newly created database
func openDB(name string, readOnly bool) (*leveldb.DB, int, error) {

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		_ = db.Close()
		return nil, 0, err
	}

	if 2 != len(versionValue) {
		_ = db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 2, len(versionValue))
	}

	version := int(versionValue[0])<<8 + int(versionValue[1])
	return db, version, nil
}

// write the version marker
func putVersion(db *leveldb.DB, version int) error {
	versionValue := []byte{
		byte(version >> 8),
		byte(version),
	}
	return db.Put(versionKey, versionValue, nil)
}
