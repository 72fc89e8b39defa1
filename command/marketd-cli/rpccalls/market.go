// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/realmark/marketd/account"
	engine "github.com/realmark/marketd/market"
	"github.com/realmark/marketd/rpc/market"
)

// ListAssetData - parameters for a new listing
type ListAssetData struct {
	Caller     *account.Account
	Owner      *account.Account
	URI        string
	Name       string
	Location   string
	SalePrice  uint64
	Properties []string
}

// ListAsset - place an asset on the market
func (client *Client) ListAsset(listData *ListAssetData) (*market.ListReply, error) {

	listArgs := market.ListArguments{
		Caller:     listData.Caller,
		Owner:      listData.Owner,
		URI:        listData.URI,
		Name:       listData.Name,
		Location:   listData.Location,
		SalePrice:  listData.SalePrice,
		Properties: listData.Properties,
	}

	if err := client.printJson("List Request", listArgs); nil != err {
		return nil, err
	}

	var reply market.ListReply
	if err := client.client.Call("Market.List", listArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("List Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// BuyAssetData - parameters for a purchase
type BuyAssetData struct {
	Buyer   *account.Account
	Id      uint64
	Payment uint64
}

// BuyAsset - purchase a listed asset
func (client *Client) BuyAsset(buyData *BuyAssetData) (*market.BuyReply, error) {

	buyArgs := market.BuyArguments{
		Buyer:   buyData.Buyer,
		Id:      buyData.Id,
		Payment: buyData.Payment,
	}

	if err := client.printJson("Buy Request", buyArgs); nil != err {
		return nil, err
	}

	var reply market.BuyReply
	if err := client.client.Call("Market.Buy", buyArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("Buy Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// ConfirmDelivery - mark a sold asset delivered and settle the sale
func (client *Client) ConfirmDelivery(caller *account.Account, id uint64) (*engine.Settlement, error) {

	confirmArgs := market.ConfirmDeliveryArguments{
		Caller: caller,
		Id:     id,
	}

	if err := client.printJson("ConfirmDelivery Request", confirmArgs); nil != err {
		return nil, err
	}

	var reply engine.Settlement
	if err := client.client.Call("Market.ConfirmDelivery", confirmArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("ConfirmDelivery Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Disburse - retry any failed payout legs of a settled sale
func (client *Client) Disburse(id uint64) (*engine.Settlement, error) {

	disburseArgs := market.DisburseArguments{
		Id: id,
	}

	if err := client.printJson("Disburse Request", disburseArgs); nil != err {
		return nil, err
	}

	var reply engine.Settlement
	if err := client.client.Call("Market.Disburse", disburseArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("Disburse Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// Withdraw - pull the caller's accumulated balance
func (client *Client) Withdraw(owner *account.Account) (*market.WithdrawReply, error) {

	withdrawArgs := market.WithdrawArguments{
		Owner: owner,
	}

	if err := client.printJson("Withdraw Request", withdrawArgs); nil != err {
		return nil, err
	}

	var reply market.WithdrawReply
	if err := client.client.Call("Market.Withdraw", withdrawArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("Withdraw Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
