// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/realmark/marketd/account"
	"github.com/realmark/marketd/authority"
	"github.com/realmark/marketd/market"
	"github.com/realmark/marketd/messagebus"
	"github.com/realmark/marketd/mode"
	"github.com/realmark/marketd/ownership"
	"github.com/realmark/marketd/ownertoken"
	"github.com/realmark/marketd/register"
	"github.com/realmark/marketd/rpc"
	"github.com/realmark/marketd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Network)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// the platform administrator account
	admin, err := account.AccountFromBase58(theConfiguration.Payout.Administrator)
	if nil != err {
		log.Criticalf("administrator account error: %s", err)
		exitwithstatus.Message("administrator account: %q error: %s", theConfiguration.Payout.Administrator, err)
	}
	if admin.IsTesting() != mode.IsTesting() {
		exitwithstatus.Message("administrator account: %q is for the wrong network", theConfiguration.Payout.Administrator)
	}

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	databaseName := theConfiguration.Database.Directory + "/" + theConfiguration.Database.Name
	err = storage.Initialise(databaseName, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// the asset register
	log.Info("initialise register")
	err = register.Initialise(storage.Pool.Assets, storage.Pool.AssetCount)
	if nil != err {
		log.Criticalf("register initialise error: %s", err)
		exitwithstatus.Message("register initialise error: %s", err)
	}
	defer register.Finalise()

	// the per-account asset index
	log.Info("initialise ownership")
	err = ownership.Initialise(storage.Pool.OwnerList, storage.Pool.OwnerNextCount)
	if nil != err {
		log.Criticalf("ownership initialise error: %s", err)
		exitwithstatus.Message("ownership initialise error: %s", err)
	}
	defer ownership.Finalise()

	// token custody
	log.Info("initialise ownertoken")
	err = ownertoken.Initialise(storage.Pool.TokenCustody)
	if nil != err {
		log.Criticalf("ownertoken initialise error: %s", err)
		exitwithstatus.Message("ownertoken initialise error: %s", err)
	}
	defer ownertoken.Finalise()

	// payouts are appended to a journal for the external
	// disbursement agent
	payer, err := newJournalPayer(theConfiguration.Payout.JournalFile)
	if nil != err {
		log.Criticalf("payout journal error: %s", err)
		exitwithstatus.Message("payout journal: %q error: %s", theConfiguration.Payout.JournalFile, err)
	}
	defer payer.close()

	// the market engine
	log.Info("initialise market")
	err = market.Initialise(
		market.Handles{
			FeeLedger:    storage.Pool.FeeLedger,
			PayoutLedger: storage.Pool.PayoutLedger,
			Balances:     storage.Pool.Balances,
		},
		admin,
		authority.NewSingleAdministrator(admin),
		theConfiguration.Payout.FeeBasisPoints,
		ownertoken.Get(),
		payer,
	)
	if nil != err {
		log.Criticalf("market initialise error: %s", err)
		exitwithstatus.Message("market initialise error: %s", err)
	}
	defer market.Finalise()

	// start the RPC server
	log.Info("initialise rpc")
	err = rpc.Initialise(&theConfiguration.ClientRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// start up recovery is complete, accept mutating calls
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("Type CTRL-C to shutdown\n")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	// drain the notification bus until shutdown
	notifications := messagebus.Bus.Notify.Chan()
loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop
		case message := <-notifications:
			log.Infof("notification: %s  parameters: %x", message.Command, message.Parameters)
		}
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
