// Package stubserver implements an in-memory reference backend speaking the
// inventory REST contract the sync agent drains against.
//
// It exists for local development and integration testing: version checks,
// per-operation idempotency, and tombstoned deletes behave exactly as the
// agent expects, but nothing survives a restart.
package stubserver
