package control

import "errors"

var (
	// ErrUnreachable is returned when the background side neither accepts nor
	// answers a request within the client timeout.
	ErrUnreachable = errors.New("background worker unreachable")

	// ErrRequestFailed wraps the error text of a reply with Success=false.
	ErrRequestFailed = errors.New("control request failed")

	// ErrUnknownMessage is reported for a request type the server does not
	// handle.
	ErrUnknownMessage = errors.New("unknown control message type")
)
