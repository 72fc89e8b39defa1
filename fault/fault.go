// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2026 Realmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// AuthorizationError - caller lacks the required credential
	AuthorizationError GenericError

	// ExistsError - something that should be absent is present
	ExistsError GenericError

	// NotFoundError - something that should be present is absent
	NotFoundError GenericError

	// PaymentError - payment does not match the required amount
	PaymentError GenericError

	// ProcessError - operation cannot be performed in the current
	// run state
	ProcessError GenericError

	// StateError - operation attempted in the wrong lifecycle stage
	StateError GenericError

	// TransferError - disbursement to a specific party failed,
	// the settled state is already committed and the leg is retriable
	TransferError GenericError

	// ValidationError - malformed input
	ValidationError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ProcessError("already initialised")
	AlreadySettled                = StateError("asset is already settled")
	AssetAlreadySold              = StateError("asset is already sold")
	AssetNotFound                 = NotFoundError("asset not found")
	AssetNotYetSold               = StateError("asset is not yet sold")
	CannotDecodeAccount           = ValidationError("cannot decode account")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ChecksumMismatch              = ValidationError("checksum mismatch")
	DatabaseIsNotSet              = ProcessError("database is not set")
	DeliveryAlreadyConfirmed      = StateError("delivery is already confirmed")
	InvalidConfigurationFile      = ValidationError("invalid configuration file")
	InvalidCount                  = ProcessError("invalid count")
	InvalidCursor                 = ProcessError("invalid cursor")
	InvalidIpAddress              = ValidationError("invalid ip Address")
	InvalidItem                   = StateError("invalid item")
	InvalidKeyLength              = ValidationError("invalid key length")
	InvalidKeyType                = ValidationError("invalid key type")
	InvalidNetwork                = ProcessError("invalid network")
	InvalidSignature              = ValidationError("invalid signature")
	InvalidStructPointer          = ProcessError("invalid struct pointer")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	ListerPayoutFailed            = TransferError("payout to lister failed")
	MissingParameters             = ValidationError("missing parameters")
	MissingProperties             = ValidationError("missing properties")
	NotACustodiedToken            = StateError("not a custodied token")
	NotAdministrator              = AuthorizationError("caller is not the administrator")
	NotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	NotInitialised                = ProcessError("not initialised")
	NotPublicKey                  = ValidationError("not a public key")
	NotTokenOwner                 = StateError("not the current token owner")
	PayoutFailed                  = TransferError("payout failed")
	PlatformPayoutFailed          = TransferError("payout to platform failed")
	PriceOutOfRange               = ValidationError("price is out of range")
	RateLimiting                  = ProcessError("rate limiting")
	ReceiverNotAcknowledged       = TransferError("receiver did not acknowledge the token")
	TokenTransferFailed           = TransferError("ownership token transfer failed")
	WrongNetworkForAccount        = ValidationError("wrong network for account")
	WrongPaymentAmount            = PaymentError("payment does not match the sale price")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e PaymentError) Error() string       { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e StateError) Error() string         { return string(e) }
func (e TransferError) Error() string      { return string(e) }
func (e ValidationError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrPayment(e error) bool       { _, ok := e.(PaymentError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }
func IsErrTransfer(e error) bool      { _, ok := e.(TransferError); return ok }
func IsErrValidation(e error) bool    { _, ok := e.(ValidationError); return ok }
