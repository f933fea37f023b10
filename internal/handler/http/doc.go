// Package http implements the local HTTP control API of the outbox client.
//
// Feature code running outside the client process queues payloads, reads the
// per-stream status and triggers drains through it. Request tracing, access
// logging and device-token authentication are handled here before requests
// reach the sync manager.
package http
