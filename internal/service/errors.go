package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrStorageQuotaExceeded is returned by write operations when the
	// estimated size of the mutation does not fit the local storage budget.
	ErrStorageQuotaExceeded = errors.New("local storage quota exceeded")

	ErrUnknownStrategy     = errors.New("unknown resolution strategy")
	ErrUnknownAutoStrategy = errors.New("unknown auto-resolution strategy")

	// ErrIncompleteResolution is returned by ApplyResolutions when some
	// conflicts of an affected entry were left without a decision. Entries
	// whose conflicts were fully covered are still committed.
	ErrIncompleteResolution = errors.New("entry has unresolved conflicts")
)
