package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrTooLarge     = errors.New("message too large")
	ErrUnavailable  = errors.New("delivery endpoint unavailable")
)
