package service

import "errors"

var (
	// ErrBuildPayload indicates the candidate payload could not be
	// serialized. Fatal to the attempt; the in-flight flag is cleared and
	// no fingerprint is written.
	ErrBuildPayload = errors.New("payload build failed")

	// ErrBatchSize indicates a non-positive maximum batch size.
	ErrBatchSize = errors.New("batch size must be positive")

	// ErrContactNotFound is returned by [RosterProvider.Contact] when the
	// requested id is not in the roster.
	ErrContactNotFound = errors.New("contact not in roster")
)
