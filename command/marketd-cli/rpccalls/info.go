// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/realmark/marketd/rpc/node"
)

// GetNodeInfo - request status from the connected daemon
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {

	infoArgs := node.InfoArguments{}

	var reply node.InfoReply
	if err := client.client.Call("Node.Info", infoArgs, &reply); nil != err {
		return nil, err
	}

	if err := client.printJson("Info Reply", reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
