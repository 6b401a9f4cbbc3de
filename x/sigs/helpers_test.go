package sigs

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/nftswaptest"
)

// stdTx is a minimal SignedTx carrying raw sign bytes.
type stdTx struct {
	nftswaptest.Tx
	raw  []byte
	sigs []*StdSignature
}

var _ SignedTx = (*stdTx)(nil)
var _ nftswap.Tx = (*stdTx)(nil)

func newStdTx(raw []byte) *stdTx {
	return &stdTx{raw: raw}
}

func (tx *stdTx) GetSignBytes() ([]byte, error) {
	return tx.raw, nil
}

func (tx *stdTx) GetSignatures() []*StdSignature {
	return tx.sigs
}

// signersHandler records who was authenticated by the last call.
type signersHandler struct {
	signers []nftswap.Address
}

func (h *signersHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	h.signers = Authenticate{}.GetAddresses(ctx)
	return &nftswap.CheckResult{}, nil
}

func (h *signersHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	h.signers = Authenticate{}.GetAddresses(ctx)
	return &nftswap.DeliverResult{}, nil
}
