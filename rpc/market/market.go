// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/fault"
	engine "github.com/realmark/marketd/market"
	"github.com/realmark/marketd/mode"
	"github.com/realmark/marketd/rpc/ratelimit"
)

// Market - type for the RPC
type Market struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

const (
	rateLimitMarket = 200
	rateBurstMarket = 100
)

// New - create the market service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Market {
	return &Market{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// all supplied accounts must belong to the current network
func (market *Market) checkNetwork(accounts ...*account.Account) error {
	testing := market.IsTestingChain()
	for _, a := range accounts {
		if nil == a {
			return fault.MissingParameters
		}
		if a.IsTesting() != testing {
			return fault.WrongNetworkForAccount
		}
	}
	return nil
}

// Market.List
// -----------

// ListArguments - arguments for a new listing
type ListArguments struct {
	Caller     *account.Account `json:"caller"` // base58
	Owner      *account.Account `json:"owner"`  // base58, credited as lister
	URI        string           `json:"uri"`
	Name       string           `json:"name"`
	Location   string           `json:"location"`
	SalePrice  uint64           `json:"salePrice"`
	Properties []string         `json:"properties"`
}

// ListReply - result of a new listing
type ListReply struct {
	Id uint64 `json:"id,string"`
}

// List - create a new listing
func (market *Market) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	log := market.Log
	log.Infof("Market.List: %+v", arguments)

	if !market.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	if err := market.checkNetwork(arguments.Caller, arguments.Owner); nil != err {
		return err
	}

	id, err := engine.List(
		arguments.Caller,
		arguments.Owner,
		arguments.URI,
		arguments.Name,
		arguments.Location,
		arguments.SalePrice,
		arguments.Properties,
	)
	if nil != err {
		return err
	}

	reply.Id = id
	return nil
}

// Market.Buy
// ----------

// BuyArguments - arguments for a purchase
type BuyArguments struct {
	Buyer   *account.Account `json:"buyer"` // base58
	Id      uint64           `json:"id,string"`
	Payment uint64           `json:"payment"`
}

// BuyReply - result of a purchase
type BuyReply struct {
	Id    uint64           `json:"id,string"`
	Buyer *account.Account `json:"buyer"`
}

// Buy - purchase a listed asset
func (market *Market) Buy(arguments *BuyArguments, reply *BuyReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	log := market.Log
	log.Infof("Market.Buy: %+v", arguments)

	if !market.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	if err := market.checkNetwork(arguments.Buyer); nil != err {
		return err
	}

	err := engine.Buy(arguments.Buyer, arguments.Id, arguments.Payment)
	if nil != err {
		return err
	}

	reply.Id = arguments.Id
	reply.Buyer = arguments.Buyer
	return nil
}

// Market.ConfirmDelivery
// ----------------------

// ConfirmDeliveryArguments - arguments for delivery confirmation
type ConfirmDeliveryArguments struct {
	Caller *account.Account `json:"caller"` // base58
	Id     uint64           `json:"id,string"`
}

// ConfirmDelivery - record the handover and settle the sale
func (market *Market) ConfirmDelivery(arguments *ConfirmDeliveryArguments, reply *engine.Settlement) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	log := market.Log
	log.Infof("Market.ConfirmDelivery: %+v", arguments)

	if !market.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	if err := market.checkNetwork(arguments.Caller); nil != err {
		return err
	}

	settlement, err := engine.ConfirmDelivery(arguments.Caller, arguments.Id)
	if nil != err {
		return err
	}

	*reply = *settlement
	return nil
}

// Market.Disburse
// ---------------

// DisburseArguments - arguments for a payout retry
type DisburseArguments struct {
	Id uint64 `json:"id,string"`
}

// Disburse - retry the failed payout legs of a settled asset
func (market *Market) Disburse(arguments *DisburseArguments, reply *engine.Settlement) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	log := market.Log
	log.Infof("Market.Disburse: %+v", arguments)

	if !market.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	settlement, err := engine.Disburse(arguments.Id)
	if nil != settlement {
		*reply = *settlement
	}
	return err
}

// Market.Withdraw
// ---------------

// WithdrawArguments - arguments for a balance withdrawal
type WithdrawArguments struct {
	Owner *account.Account `json:"owner"` // base58
}

// WithdrawReply - result of a withdrawal
type WithdrawReply struct {
	Amount uint64 `json:"amount"`
}

// Withdraw - pull the credited balance of an account
func (market *Market) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	log := market.Log
	log.Infof("Market.Withdraw: %+v", arguments)

	if !market.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	if err := market.checkNetwork(arguments.Owner); nil != err {
		return err
	}

	amount, err := engine.Withdraw(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Amount = amount
	return nil
}
