// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/rpc/owner"
)

// OwnedAssets - list the assets recorded against an account
func (client *Client) OwnedAssets(ownerAccount *account.Account, start uint64, count int) (*owner.AssetsReply, error) {

	assetsArgs := owner.AssetsArguments{
		Owner: ownerAccount,
		Start: start,
		Count: count,
	}

	if err := client.printJson("Owned Request", assetsArgs); nil != err {
		return nil, err
	}

	var reply owner.AssetsReply
	if err := client.client.Call("Owner.Assets", assetsArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("Owned Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
