// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote inventory API.
//
// The primary abstraction is [RemoteAPI], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteAPI]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrVersionConflict] for 409, [ErrNetwork] for
// transport failures and timeouts).
package adapter

import (
	"context"

	"github.com/MKhiriev/shelfsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_api_mock.go -package=mock

// RemoteAPI defines transport-agnostic communication with the remote
// inventory backend. Implementations are responsible for serialisation,
// idempotency headers, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The backend is required to be idempotent per (entityId, operationId):
// queue state is persisted before every call, so after a crash the same
// operation may be sent twice.
type RemoteAPI interface {
	// Push sends one queued mutation carrying its base version and
	// operation id. On acceptance it returns the new authoritative version.
	// Returns [ErrVersionConflict] (wrapped) when the base version no longer
	// matches the server's current version, [ErrNetwork] on transport
	// failures and timeouts, and [ErrServerRejection] for other non-2xx
	// responses.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// Fetch retrieves the server's current view of an entity, used by the
	// conflict detector to compare fields after a version mismatch.
	// Returns [ErrNotFound] (wrapped) when the entity does not exist
	// remotely.
	Fetch(ctx context.Context, entityType models.EntityType, entityID string) (models.RemoteRecord, error)
}
