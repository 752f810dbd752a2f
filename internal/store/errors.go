package store

import "errors"

var (
	// ErrKeyNotFound is returned by [KeyValueRepository.Get] when the
	// requested collection/key slot was never written.
	ErrKeyNotFound = errors.New("key not found")

	// ErrJobNotFound is returned when a queue operation targets a job that
	// no longer exists.
	ErrJobNotFound = errors.New("sync job not found")
)
