package nft

import "github.com/iov-one/nftswap/errors"

// nft reserves 500~600
var (
	ErrNotOwner           = errors.Register(500, "not the asset owner")
	ErrMissingCollection  = errors.Register(501, "missing collection reference")
	ErrCollectionMismatch = errors.Register(502, "collection mismatch")
)
