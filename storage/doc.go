// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single leveldb database containing prefixed pools:
//
//	Asset register:
//
//	  A ⧺ asset id          - packed asset record
//	  N ⧺ "count"           - next asset id to assign
//
//	Ownership index:
//
//	  L ⧺ owner ⧺ count     - list of assets the owner listed or bought
//	                          data: asset id
//	  D ⧺ owner             - next count value for appending to the list
//	                          data: count
//
//	Ownership token custody:
//
//	  K ⧺ asset id          - current titled owner of the ownership token
//	                          data: owner
//
//	Settlement audit:
//
//	  F ⧺ asset id          - platform fee charged, written once at settlement
//	  P ⧺ asset id          - lister payout, written once at settlement
//	  Q ⧺ owner             - currently withdrawable balance
//
//	Testing:
//
//	  Z ⧺ key               - testing data
package storage
