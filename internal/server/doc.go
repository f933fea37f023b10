// Package server runs the local control API of the outbox client.
//
// The server is a worker: it listens until its context is cancelled and then
// shuts down gracefully.
package server
