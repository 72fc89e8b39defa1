// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "marketd-cli"
	app.Usage = "command line tool for a marketd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " connect to market `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2230",
			Usage: " marketd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "place an asset on the market",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "*administrator `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*lister `ACCOUNT` to credit on settlement",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*asset `URI`",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "location, l",
					Value: "",
					Usage: "*asset location `STRING`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*sale price `AMOUNT`",
				},
				cli.StringSliceFlag{
					Name:  "property, P",
					Usage: "*asset property `STRING`, repeat for more",
				},
			},
			Action: runList,
		},
		{
			Name:      "buy",
			Usage:     "purchase a listed asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*buyer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset `ID` to buy",
				},
				cli.Uint64Flag{
					Name:  "payment, p",
					Value: 0,
					Usage: "*payment `AMOUNT`, must equal the sale price",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "confirm",
			Usage:     "confirm delivery of a sold asset and settle the sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, a",
					Value: "",
					Usage: "*administrator `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset `ID` to confirm",
				},
			},
			Action: runConfirm,
		},
		{
			Name:      "disburse",
			Usage:     "retry the failed payout legs of a settled asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset `ID` to disburse",
				},
			},
			Action: runDisburse,
		},
		{
			Name:      "withdraw",
			Usage:     "pull an account's credited balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account `ACCOUNT` to withdraw",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "owned",
			Usage:     "list assets recorded against an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account `ACCOUNT` to scan",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "get",
			Usage:     "display one asset record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset `ID` to fetch",
				},
			},
			Action: runGet,
		},
		{
			Name:      "assets",
			Usage:     "list asset records in id order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first `ID` to fetch",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runAssets,
		},
		{
			Name:   "info",
			Usage:  "display marketd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display marketd-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "live", "bitmark":
			network = "live"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}

		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("missing connect host:port")
		}

		if verbose {
			fmt.Fprintf(e, "network: %s\n", network)
			fmt.Fprintf(e, "connect: %s\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			testnet: network != "live",
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
