package nft

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x"
)

const (
	issueCost    int64 = 100
	transferCost int64 = 50
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r nftswap.Registry, auth x.Authenticator, control Controller) {
	r.Handle(pathIssueMsg, IssueHandler{auth: auth, control: control})
	r.Handle(pathTransferMsg, TransferHandler{control: control})
}

// RegisterQuery will register this bucket as "/assets" and the lookup
// of all assets held by an address as "/assets/owner"
func RegisterQuery(qr nftswap.QueryRouter) {
	b := NewBucket()
	b.Register("assets", qr)
	b.RegisterIndex(ownerIndex, "assets/owner", qr)
}

// IssueHandler creates assets. The future owner must sign.
type IssueHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ nftswap.Handler = IssueHandler{}

func (h IssueHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: issueCost}, nil
}

func (h IssueHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Issue(db, msg.Asset()); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{Data: msg.ID}, nil
}

func (h IssueHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*IssueMsg, error) {
	var msg IssueMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	if _, err := h.control.Get(db, msg.ID); err == nil {
		return nil, errors.Wrapf(errors.ErrDuplicate, "asset %s", msg.ID)
	} else if !errors.ErrNotFound.Is(err) {
		return nil, err
	}
	return &msg, nil
}

// TransferHandler moves assets directly between owners. Authorization
// is left to the controller.
type TransferHandler struct {
	control Controller
}

var _ nftswap.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg TransferMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	a, err := h.control.Get(db, msg.ID)
	if err != nil {
		return nil, err
	}
	if !a.Owner.Equals(msg.Owner) {
		return nil, errors.Wrapf(ErrNotOwner, "asset %s", a.ID)
	}
	return &nftswap.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg TransferMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	req := TransferRequest{
		Asset:      msg.ID,
		Authority:  msg.Owner,
		NewOwner:   msg.NewOwner,
		Collection: msg.Collection,
	}
	if err := h.control.Transfer(ctx, db, req); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}
