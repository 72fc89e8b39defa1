// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2024 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/realmark/marketd/fault"
)

var (
	errAuthorizationOne = fault.AuthorizationError("authorization one")
	errAuthorizationTwo = fault.AuthorizationError("authorization two")
	errNotFoundOne      = fault.NotFoundError("not found one")
	errNotFoundTwo      = fault.NotFoundError("not found two")
	errPaymentOne       = fault.PaymentError("payment one")
	errPaymentTwo       = fault.PaymentError("payment two")
	errProcessOne       = fault.ProcessError("process one")
	errProcessTwo       = fault.ProcessError("process two")
	errStateOne         = fault.StateError("state one")
	errStateTwo         = fault.StateError("state two")
	errTransferOne      = fault.TransferError("transfer one")
	errTransferTwo      = fault.TransferError("transfer two")
	errValidationOne    = fault.ValidationError("validation one")
	errValidationTwo    = fault.ValidationError("validation two")
)

// test that the error classes stay distinguishable
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorization bool
		notFound      bool
		payment       bool
		process       bool
		state         bool
		transfer      bool
		validation    bool
	}{
		{errAuthorizationOne, true, false, false, false, false, false, false},
		{errAuthorizationTwo, true, false, false, false, false, false, false},
		{errNotFoundOne, false, true, false, false, false, false, false},
		{errNotFoundTwo, false, true, false, false, false, false, false},
		{errPaymentOne, false, false, true, false, false, false, false},
		{errPaymentTwo, false, false, true, false, false, false, false},
		{errProcessOne, false, false, false, true, false, false, false},
		{errProcessTwo, false, false, false, true, false, false, false},
		{errStateOne, false, false, false, false, true, false, false},
		{errStateTwo, false, false, false, false, true, false, false},
		{errTransferOne, false, false, false, false, false, true, false},
		{errTransferTwo, false, false, false, false, false, true, false},
		{errValidationOne, false, false, false, false, false, false, true},
		{errValidationTwo, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorization(err) != e.authorization {
			t.Errorf("%d: expected 'authorization' == %v for err = %v", i, e.authorization, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPayment(err) != e.payment {
			t.Errorf("%d: expected 'payment' == %v for err = %v", i, e.payment, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrState(err) != e.state {
			t.Errorf("%d: expected 'state' == %v for err = %v", i, e.state, err)
		}
		if fault.IsErrTransfer(err) != e.transfer {
			t.Errorf("%d: expected 'transfer' == %v for err = %v", i, e.transfer, err)
		}
		if fault.IsErrValidation(err) != e.validation {
			t.Errorf("%d: expected 'validation' == %v for err = %v", i, e.validation, err)
		}
	}
}

// class checks must also reject plain errors
func TestPlainError(t *testing.T) {
	err := fault.GenericError("generic")
	if fault.IsErrState(err) || fault.IsErrTransfer(err) || fault.IsErrValidation(err) {
		t.Errorf("generic error matched a class: %v", err)
	}
}
