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

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkAccount(m, "caller", c.String("caller"))
	if nil != err {
		return err
	}

	owner, err := checkAccount(m, "owner", c.String("owner"))
	if nil != err {
		return err
	}

	uri := c.String("uri")
	if "" == uri {
		return fmt.Errorf("missing asset uri")
	}

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing asset name")
	}

	location := c.String("location")
	if "" == location {
		return fmt.Errorf("missing asset location")
	}

	properties := c.StringSlice("property")
	if 0 == len(properties) {
		return fmt.Errorf("missing asset properties")
	}

	salePrice := c.Uint64("price")

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "uri: %s\n", uri)
		fmt.Fprintf(m.e, "price: %d\n", salePrice)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	listConfig := &rpccalls.ListAssetData{
		Caller:     caller,
		Owner:      owner,
		URI:        uri,
		Name:       name,
		Location:   location,
		SalePrice:  salePrice,
		Properties: properties,
	}

	response, err := client.ListAsset(listConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
