// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/realmark/marketd/rpc/asset"
)

// GetAsset - fetch one asset record by id
func (client *Client) GetAsset(id uint64) (*asset.GetReply, error) {

	getArgs := asset.GetArguments{
		Id: id,
	}

	if err := client.printJson("Asset Get Request", getArgs); nil != err {
		return nil, err
	}

	var reply asset.GetReply
	if err := client.client.Call("Asset.Get", getArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("Asset Get Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// ListAssets - fetch a page of asset records in id order
func (client *Client) ListAssets(start uint64, count int) (*asset.ListReply, error) {

	listArgs := asset.ListArguments{
		Start: start,
		Count: count,
	}

	if err := client.printJson("Asset List Request", listArgs); nil != err {
		return nil, err
	}

	var reply asset.ListReply
	if err := client.client.Call("Asset.List", listArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("Asset List Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
