// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/command/marketd-cli/rpccalls"
)

// open an RPC connection using the global metadata
func newClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.connect, m.verbose, m.e)
}

// decode a base58 account flag and check it matches the selected network
func checkAccount(m *metadata, name string, value string) (*account.Account, error) {
	if "" == value {
		return nil, fmt.Errorf("missing %s account", name)
	}
	acc, err := account.AccountFromBase58(value)
	if nil != err {
		return nil, fmt.Errorf("invalid %s account: %q error: %s", name, value, err)
	}
	if acc.IsTesting() != m.testnet {
		return nil, fmt.Errorf("%s account: %q is not valid for this network", name, value)
	}
	return acc, nil
}

// decode a decimal asset id flag
func checkAssetId(c *cli.Context) (uint64, error) {
	s := c.String("id")
	if "" == s {
		return 0, fmt.Errorf("missing asset id")
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("invalid asset id: %q error: %s", s, err)
	}
	return id, nil
}
