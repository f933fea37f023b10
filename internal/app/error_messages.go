// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// outbox control API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies in place of internal error text.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a device bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the token is valid but was issued for
	// another device.
	MsgAccessDenied = "access denied"

	// MsgPreferencesNotSaved is returned when sync preferences could not be
	// persisted.
	MsgPreferencesNotSaved = "preferences could not be saved"
)
