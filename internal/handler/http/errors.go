// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned to callers of the control API.
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrForeignDevice is returned when the token was issued for another
	// device.
	ErrForeignDevice = errors.New("token issued for another device")

	// ErrInvalidBody is returned when the request body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrBodyTooLarge is returned when the request body exceeds its limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
