// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the outbox client runtime.
//
// It opens the stores, starts the background sync worker, selects the queue
// backend and runs the foreground workers (periodic sync, connectivity
// monitor, local API and the optional status screen) for the lifetime of the
// process.
package client
