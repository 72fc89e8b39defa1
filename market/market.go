// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - the lifecycle engine of the marketplace
//
// each operation runs under the engine lock so mutations serialize;
// settlement commits record state and ledger credits before any
// external payout is attempted
package market

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/assetrecord"
	"github.com/realmark/marketd/authority"
	"github.com/realmark/marketd/background"
	"github.com/realmark/marketd/fault"
	"github.com/realmark/marketd/messagebus"
	"github.com/realmark/marketd/ownership"
	"github.com/realmark/marketd/ownertoken"
	"github.com/realmark/marketd/register"
	"github.com/realmark/marketd/storage"
)

// limits
const (
	// full percentage in basis points
	totalBasisPoints = 10000

	// price guard also prevents fee arithmetic overflow
	maximumSalePrice = uint64(1) << 50
)

// Payer - external fund transfer capability
//
// a failed Pay must have no partial effect; the engine keeps the
// amount credited in the balance pool until a Pay succeeds
type Payer interface {
	Pay(to *account.Account, amount uint64) error
}

// Handles - storage pools used by the engine
type Handles struct {
	FeeLedger    storage.Handle
	PayoutLedger storage.Handle
	Balances     storage.Handle
}

// Settlement - the outcome of a disbursement
//
// the Paid flags report the push legs; a false flag leaves the amount
// in the balance pool for retry or withdrawal
type Settlement struct {
	Id           uint64 `json:"id,string"`
	ListerShare  uint64 `json:"listerShare"`
	PlatformFee  uint64 `json:"platformFee"`
	ListerPaid   bool   `json:"listerPaid"`
	PlatformPaid bool   `json:"platformPaid"`
}

// globals for this module
type marketData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	handles Handles

	admin          *account.Account
	policy         authority.Policy
	feeBasisPoints uint64

	issuer ownertoken.Issuer
	payer  Payer

	// for background processes
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData marketData

// Initialise - start the market engine
func Initialise(
	handles Handles,
	admin *account.Account,
	policy authority.Policy,
	feeBasisPoints uint64,
	issuer ownertoken.Issuer,
	payer Payer,
) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if nil == handles.FeeLedger || nil == handles.PayoutLedger || nil == handles.Balances {
		return fault.DatabaseIsNotSet
	}
	if nil == admin || nil == policy || nil == issuer || nil == payer {
		return fault.MissingParameters
	}
	if feeBasisPoints > totalBasisPoints {
		return fault.PriceOutOfRange
	}

	globalData.log = logger.New("market")
	globalData.log.Info("starting…")

	globalData.handles = handles
	globalData.admin = admin
	globalData.policy = policy
	globalData.feeBasisPoints = feeBasisPoints
	globalData.issuer = issuer
	globalData.payer = payer

	globalData.initialised = true

	// start background processes
	processes := background.Processes{
		&payoutRetry{},
	}
	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop the market engine
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.background.Stop()

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.handles = Handles{}
	globalData.admin = nil
	globalData.policy = nil
	globalData.issuer = nil
	globalData.payer = nil
	globalData.initialised = false

	return nil
}

// List - create a new listing
//
// only an administrator may list; the owner parameter is credited as
// lister and the custody token is minted to the platform
func List(
	caller *account.Account,
	owner *account.Account,
	uri string,
	name string,
	location string,
	salePrice uint64,
	properties []string,
) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	if !globalData.policy.IsAdministrator(caller) {
		return 0, fault.NotAdministrator
	}
	if nil == owner {
		return 0, fault.MissingParameters
	}
	if 0 == len(properties) {
		return 0, fault.MissingProperties
	}
	if 0 == salePrice || salePrice > maximumSalePrice {
		return 0, fault.PriceOutOfRange
	}

	record := &assetrecord.AssetRecord{
		URI:        uri,
		Name:       name,
		Location:   location,
		SalePrice:  salePrice,
		Properties: properties,
		Lister:     owner,
		State:      assetrecord.Listed,
	}

	// a record the register cannot store must be refused before the
	// custody token exists, otherwise the minted token would orphan
	// the id
	if _, err := record.Pack(); nil != err {
		return 0, err
	}

	// operations serialize under the engine lock, so the id peeked
	// here is the id Create will assign
	id := register.Count()

	// custody to the platform; a mint failure aborts before any
	// record is stored
	err := globalData.issuer.Mint(globalData.admin, id)
	if nil != err {
		return 0, err
	}

	createdId, err := register.Create(record)
	if nil != err {
		return 0, err
	}
	if createdId != id {
		globalData.log.Criticalf("id mismatch: minted: %d  created: %d", id, createdId)
	}

	err = ownership.Link(owner, createdId)
	if nil != err {
		return 0, err
	}

	messagebus.Bus.Notify.Send("listed", idKey(createdId), []byte(name))
	globalData.log.Infof("listed asset: %d  price: %d  lister: %s", createdId, salePrice, owner)

	return createdId, nil
}

// Buy - purchase a listed asset
//
// payment must match the sale price exactly; a failed token transfer
// leaves the record unsold
func Buy(buyer *account.Account, id uint64, payment uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == buyer {
		return fault.MissingParameters
	}

	record, err := register.Get(id)
	if nil != err {
		return fault.InvalidItem
	}

	if assetrecord.Listed != record.State {
		return fault.AssetAlreadySold
	}
	if payment != record.SalePrice {
		return fault.WrongPaymentAmount
	}

	// the token moves first so a refused or failed transfer leaves
	// no sale recorded
	err = globalData.issuer.Transfer(globalData.admin, buyer, id)
	if nil != err {
		return err
	}

	record.Buyer = buyer
	record.State = assetrecord.Sold
	err = register.Update(record)
	if nil != err {
		return err
	}

	err = ownership.Link(buyer, id)
	if nil != err {
		return err
	}

	messagebus.Bus.Notify.Send("sold", idKey(id), buyer.Bytes())
	globalData.log.Infof("sold asset: %d to: %s", id, buyer)

	return nil
}

// ConfirmDelivery - record the off-chain handover and settle
//
// confirmation and settlement are one atomic operation; the returned
// settlement reports each payout leg separately
func ConfirmDelivery(caller *account.Account, id uint64) (*Settlement, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	if !globalData.policy.IsAdministrator(caller) {
		return nil, fault.NotAdministrator
	}

	record, err := register.Get(id)
	if nil != err {
		return nil, fault.InvalidItem
	}

	switch record.State {
	case assetrecord.Listed:
		return nil, fault.AssetNotYetSold
	case assetrecord.Sold:
		// the only state delivery can be confirmed from
	default:
		return nil, fault.DeliveryAlreadyConfirmed
	}

	record.State = assetrecord.Delivered

	return settle(record)
}

// internal settlement, caller holds the engine lock
//
// commit order matters: record state, audit ledgers and balance
// credits are all persisted before any external payout is attempted,
// so a failing or reentrant payee cannot trigger a second disbursement
func settle(record *assetrecord.AssetRecord) (*Settlement, error) {

	if record.IsSettled() {
		return nil, fault.AlreadySettled
	}

	platformFee := record.SalePrice * globalData.feeBasisPoints / totalBasisPoints
	listerShare := record.SalePrice - platformFee

	record.ListerShare = listerShare
	record.PlatformFee = platformFee
	record.State = assetrecord.Settled

	err := register.Update(record)
	if nil != err {
		return nil, err
	}

	key := idKey(record.Id)
	globalData.handles.FeeLedger.PutN(key, platformFee)
	globalData.handles.PayoutLedger.PutN(key, listerShare)

	creditBalance(record.Lister, listerShare)
	creditBalance(globalData.admin, platformFee)

	messagebus.Bus.Notify.Send("settled", key)
	globalData.log.Infof("settled asset: %d  lister share: %d  platform fee: %d",
		record.Id, listerShare, platformFee)

	settlement := &Settlement{
		Id:          record.Id,
		ListerShare: listerShare,
		PlatformFee: platformFee,
	}
	settlement.ListerPaid = tryPay(record.Lister, listerShare)
	settlement.PlatformPaid = tryPay(globalData.admin, platformFee)

	return settlement, nil
}

// Disburse - retry the failed payout legs of a settled asset
func Disburse(id uint64) (*Settlement, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	record, err := register.Get(id)
	if nil != err {
		return nil, fault.InvalidItem
	}
	if !record.IsSettled() {
		return nil, fault.InvalidItem
	}

	settlement := &Settlement{
		Id:          record.Id,
		ListerShare: record.ListerShare,
		PlatformFee: record.PlatformFee,
	}

	// a leg is outstanding while the credited amount is still in the
	// balance pool
	settlement.ListerPaid = true
	if balanceOf(record.Lister) >= record.ListerShare {
		settlement.ListerPaid = tryPay(record.Lister, record.ListerShare)
	}

	settlement.PlatformPaid = true
	if balanceOf(globalData.admin) >= record.PlatformFee {
		settlement.PlatformPaid = tryPay(globalData.admin, record.PlatformFee)
	}

	if !settlement.ListerPaid {
		return settlement, fault.ListerPayoutFailed
	}
	if !settlement.PlatformPaid {
		return settlement, fault.PlatformPayoutFailed
	}

	return settlement, nil
}

// Withdraw - pull the whole credited balance of an account
//
// returns the amount paid out; zero with no error when nothing is owed
func Withdraw(owner *account.Account) (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	if nil == owner {
		return 0, fault.MissingParameters
	}

	amount := balanceOf(owner)
	if 0 == amount {
		return 0, nil
	}

	if !tryPay(owner, amount) {
		return 0, fault.PayoutFailed
	}

	return amount, nil
}

// Balance - currently credited, not yet disbursed amount
func Balance(owner *account.Account) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised || nil == owner {
		return 0
	}
	return balanceOf(owner)
}

// FeeBasisPoints - the configured platform fee
func FeeBasisPoints() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.feeBasisPoints
}

// caller holds the engine lock
func balanceOf(owner *account.Account) uint64 {
	n, _ := globalData.handles.Balances.GetN(owner.Bytes())
	return n
}

// caller holds the engine lock
func creditBalance(owner *account.Account, amount uint64) {
	if 0 == amount {
		return
	}
	key := owner.Bytes()
	n, _ := globalData.handles.Balances.GetN(key)
	globalData.handles.Balances.PutN(key, n+amount)
}

// caller holds the engine lock
//
// push one payout leg; the balance is only debited after the payer
// reports success
func tryPay(owner *account.Account, amount uint64) bool {
	if 0 == amount {
		return true
	}

	err := globalData.payer.Pay(owner, amount)
	if nil != err {
		globalData.log.Warnf("payout failed: %s  amount: %d  error: %s", owner, amount, err)
		return false
	}

	key := owner.Bytes()
	n, _ := globalData.handles.Balances.GetN(key)
	if n <= amount {
		globalData.handles.Balances.Delete(key)
	} else {
		globalData.handles.Balances.PutN(key, n-amount)
	}
	return true
}

// big endian asset id for ledger keys and notifications
func idKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}
