// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2024 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/realmark/marketd/fault"
)

// ParseConfigurationFile - execute a Lua script and decode the table
// it returns into a configuration structure
//
// the script sees its own file name as arg[0] so relative paths can
// be resolved against the configuration directory
func ParseConfigurationFile(fileName string, config interface{}) error {
	vm := lua.NewState()
	defer vm.Close()
	vm.OpenLibs()

	arguments := &lua.LTable{}
	arguments.Insert(0, lua.LString(fileName))
	vm.SetGlobal("arg", arguments)

	if err := vm.DoFile(fileName); nil != err {
		return err
	}

	// the script must leave a table on the stack
	result, ok := vm.Get(vm.GetTop()).(*lua.LTable)
	if !ok {
		return fault.InvalidConfigurationFile
	}

	return decodeTable(result, config)
}

// map a Lua table onto a tagged Go structure
//
// field names are taken verbatim from "gluamapper" tags, no case
// conversion
func decodeTable(table *lua.LTable, config interface{}) error {
	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(name string) string {
				return name
			},
			TagName: "gluamapper",
		},
	}
	return mapper.Map(table, config)
}
