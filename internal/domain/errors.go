package domain

import (
	"context"
	"errors"
)

var (
	// ErrNftNotFound is returned when an NFT does not exist or has been burned
	ErrNftNotFound = errors.New("nft not found")

	// ErrInvalidAddress is returned when a value is not a base58 encoded public key
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAttributeFilter is returned when an attribute filter cannot be parsed
	ErrInvalidAttributeFilter = errors.New("invalid attribute filter")

	// ErrBatchPanic is returned to every waiter of a batch whose execution panicked
	ErrBatchPanic = errors.New("batch execution panicked")
)

// IsCancellation reports whether err stems from a cancelled or expired context
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
