package adapter

import "errors"

// Sentinel errors mapped from transport failures and HTTP status codes.
// Callers match them with [errors.Is].
var (
	// ErrNetwork covers transport-level failures: connection refused, DNS,
	// and request timeouts. Always retryable.
	ErrNetwork = errors.New("network error")

	// ErrVersionConflict is returned when the server rejects a mutation
	// because its base version no longer matches the current version.
	// Never retried as-is; routed to conflict detection.
	ErrVersionConflict = errors.New("version conflict")

	// ErrServerRejection covers any other non-2xx server response.
	// Retryable: the drain cycle backs off and tries again.
	ErrServerRejection = errors.New("server rejected request")

	// ErrNotFound is returned by Fetch when the entity does not exist on
	// the server.
	ErrNotFound = errors.New("entity not found on server")
)
