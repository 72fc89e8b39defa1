// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - decides who may curate the marketplace
package authority

import (
	"github.com/realmark/marketd/account"
)

// Policy - administrator check used by the market engine
type Policy interface {
	IsAdministrator(caller *account.Account) bool
}

type singleAdministrator struct {
	admin *account.Account
}

// NewSingleAdministrator - a policy recognising exactly one account
func NewSingleAdministrator(admin *account.Account) Policy {
	return &singleAdministrator{
		admin: admin,
	}
}

// IsAdministrator - true only for the configured account
func (p *singleAdministrator) IsAdministrator(caller *account.Account) bool {
	if nil == p.admin || nil == caller {
		return false
	}
	return p.admin.Equal(caller)
}
