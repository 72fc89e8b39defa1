// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/realmark/marketd/configuration"
	"github.com/realmark/marketd/fault"
)

type testConfiguration struct {
	DataDirectory string `gluamapper:"data_directory"`
	Network       string `gluamapper:"network"`
	Payout        struct {
		FeeBasisPoints int `gluamapper:"fee_basis_points"`
	} `gluamapper:"payout"`
}

const sampleConfiguration = `
local M = {}

M.data_directory = "/var/lib/marketd"
M.network = "testing"

M.payout = {
    fee_basis_points = 250,
}

return M
`

func TestParseConfigurationFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "marketd.conf")
	err = ioutil.WriteFile(fileName, []byte(sampleConfiguration), 0600)
	assert.Nil(t, err, "write error")

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "/var/lib/marketd", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "testing", config.Network, "wrong network")
	assert.Equal(t, 250, config.Payout.FeeBasisPoints, "wrong fee")
}

func TestParseMissingFile(t *testing.T) {
	var config testConfiguration
	err := configuration.ParseConfigurationFile("no-such-file.conf", &config)
	assert.NotNil(t, err, "missing file must error")
}

// a script that does not return a table is refused
func TestParseNonTableResult(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "marketd.conf")
	err = ioutil.WriteFile(fileName, []byte(`return "not a table"`), 0600)
	assert.Nil(t, err, "write error")

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.InvalidConfigurationFile, err, "wrong error")
}
