package sigs

import "github.com/iov-one/nftswap/errors"

var (
	// ErrInvalidSequence is returned when a signature sequence does not
	// match the one stored for the signer.
	ErrInvalidSequence = errors.Register(120, "invalid sequence number")
)
