// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runConfirm(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkAccount(m, "caller", c.String("caller"))
	if nil != err {
		return err
	}

	id, err := checkAssetId(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "id: %d\n", id)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ConfirmDelivery(caller, id)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
