// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/realmark/marketd/command/marketd-cli/rpccalls"
)

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buyer, err := checkAccount(m, "buyer", c.String("buyer"))
	if nil != err {
		return err
	}

	id, err := checkAssetId(c)
	if nil != err {
		return err
	}

	payment := c.Uint64("payment")

	if m.verbose {
		fmt.Fprintf(m.e, "buyer: %s\n", buyer)
		fmt.Fprintf(m.e, "id: %d\n", id)
		fmt.Fprintf(m.e, "payment: %d\n", payment)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	buyConfig := &rpccalls.BuyAssetData{
		Buyer:   buyer,
		Id:      id,
		Payment: payment,
	}

	response, err := client.BuyAsset(buyConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
