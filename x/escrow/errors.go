package escrow

import "github.com/iov-one/nftswap/errors"

// escrow reserves 1000~1099
var (
	ErrEscrowBumpMissing      = errors.Register(1000, "escrow address proof unavailable")
	ErrEscrowNotPending       = errors.Register(1001, "escrow is not pending")
	ErrInvalidSeller          = errors.Register(1002, "invalid seller")
	ErrAssetMismatch          = errors.Register(1003, "asset mismatch")
	ErrEscrowNotFunded        = errors.Register(1004, "escrow is not funded")
	ErrBuyerMismatch          = errors.Register(1005, "buyer mismatch")
	ErrMissingTransferAccount = errors.Register(1006, "missing transfer account")
	ErrEscrowStillActive      = errors.Register(1007, "escrow is still active")
)
