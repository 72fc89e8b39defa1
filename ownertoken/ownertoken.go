// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownertoken - custody of the tokens backing listed assets
//
// every listed asset is represented by exactly one token; the custody
// pool maps an asset id to the account currently holding its token
package ownertoken

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/storage"
)

// Issuer - mint and move tokens
//
// the market engine only sees this interface so tests can substitute a
// mock and a future release can push custody to an external registry
type Issuer interface {
	Mint(owner *account.Account, assetId uint64) error
	Transfer(from *account.Account, to *account.Account, assetId uint64) error
}

// Receiver - optional incoming transfer acknowledgement
//
// when the destination account has a registered receiver the transfer
// only completes if the receiver acknowledges it
type Receiver interface {
	TokenReceived(from *account.Account, assetId uint64) bool
}

// globals for this module
type ownertokenData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	custody storage.Handle

	receivers map[string]Receiver

	// set once during initialise
	initialised bool
}

// global data
var globalData ownertokenData

// Initialise - setup token custody
func Initialise(custody storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if nil == custody {
		return fault.DatabaseIsNotSet
	}

	globalData.log = logger.New("ownertoken")
	globalData.log.Info("starting…")

	globalData.custody = custody
	globalData.receivers = make(map[string]Receiver)

	globalData.initialised = true
	return nil
}

// Finalise - shut down token custody
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.custody = nil
	globalData.receivers = nil
	globalData.initialised = false

	return nil
}

// RegisterReceiver - attach an acknowledgement handler to an account
//
// a nil receiver removes the registration
func RegisterReceiver(owner *account.Account, receiver Receiver) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == owner {
		return fault.InvalidItem
	}

	if nil == receiver {
		delete(globalData.receivers, owner.String())
	} else {
		globalData.receivers[owner.String()] = receiver
	}
	return nil
}

// Get - the default issuer backed by the custody pool
func Get() Issuer {
	return custodyIssuer{}
}

// OwnerOf - the account currently holding a token
func OwnerOf(assetId uint64) (*account.Account, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	ownerBytes := globalData.custody.Get(tokenKey(assetId))
	if nil == ownerBytes {
		return nil, fault.NotACustodiedToken
	}
	return account.AccountFromBytes(ownerBytes)
}

type custodyIssuer struct{}

// Mint - create the token for a newly listed asset
func (custodyIssuer) Mint(owner *account.Account, assetId uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == owner {
		return fault.InvalidItem
	}

	key := tokenKey(assetId)
	if globalData.custody.Has(key) {
		return fault.TokenTransferFailed
	}

	globalData.custody.Put(key, owner.Bytes())
	globalData.log.Infof("minted token: %d for: %s", assetId, owner)
	return nil
}

// Transfer - move a token between accounts
func (custodyIssuer) Transfer(from *account.Account, to *account.Account, assetId uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == from || nil == to {
		return fault.InvalidItem
	}

	key := tokenKey(assetId)
	ownerBytes := globalData.custody.Get(key)
	if nil == ownerBytes {
		return fault.NotACustodiedToken
	}

	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		return err
	}
	if !owner.Equal(from) {
		return fault.NotTokenOwner
	}

	if receiver, ok := globalData.receivers[to.String()]; ok {
		if !receiver.TokenReceived(from, assetId) {
			return fault.ReceiverNotAcknowledged
		}
	}

	globalData.custody.Put(key, to.Bytes())
	globalData.log.Infof("transferred token: %d from: %s to: %s", assetId, from, to)
	return nil
}

// big endian asset id as the custody pool key
func tokenKey(assetId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, assetId)
	return key
}
