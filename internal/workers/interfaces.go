// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker in its own goroutine and returns immediately.
// The worker runs until ctx is cancelled or Stop is called. Stop blocks
// until the goroutine has exited and is a no-op for an idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Database is the lazily connected storage backend. EnsureReady returns nil
// once the database answers and its schema is migrated.
type Database interface {
	EnsureReady(ctx context.Context) error
}
