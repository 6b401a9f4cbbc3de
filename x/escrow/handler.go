package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
	"github.com/iov-one/nftswap/x"
)

const (
	createEscrowCost  int64 = 300
	depositEscrowCost int64 = 100
	buyEscrowCost     int64 = 100
	cancelEscrowCost  int64 = 50
	closeEscrowCost   int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r nftswap.Registry, auth x.Authenticator, custodian AssetCustodian, bank CoinMover) {
	bucket := NewBucket()
	custody := custodyAdapter{custodian: custodian}

	r.Handle(pathCreateMsg, CreateEscrowHandler{auth, bucket, bank})
	r.Handle(pathDepositMsg, DepositEscrowHandler{auth, bucket, custody})
	r.Handle(pathBuyMsg, BuyEscrowHandler{auth, bucket, custody, bank})
	r.Handle(pathCancelMsg, CancelEscrowHandler{auth, bucket, custody})
	r.Handle(pathCloseMsg, CloseEscrowHandler{auth, bucket, bank})
}

// RegisterQuery will register this bucket as "/escrows", the listing
// by status as "/escrows/status" and by seller address as
// "/escrows/seller".
func RegisterQuery(qr nftswap.QueryRouter) {
	bucket := NewBucket()
	bucket.Register("escrows", qr)
	bucket.RegisterIndex(sellerIndex, "escrows/seller", qr)
	qr.Register("/escrows/status", statusQuery{bucket: bucket})
}

// CreateEscrowHandler allocates a new record for the main signer.
type CreateEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   CoinMover
}

var _ nftswap.Handler = CreateEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateEscrowHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	msg, seller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key, _, err := RecordAddress(msg.Asset, seller)
	if err != nil {
		return nil, err
	}
	if exists, err := h.bucket.Has(db, key); err != nil {
		return nil, err
	} else if exists {
		return nil, errors.Wrap(errors.ErrDuplicate, "record already exists")
	}
	return &nftswap.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver stores a pending escrow and collects the record deposit.
func (h CreateEscrowHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, seller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key, nonce, err := RecordAddress(msg.Asset, seller)
	if err != nil {
		return nil, err
	}

	escrow := &Escrow{
		Asset:  msg.Asset,
		Seller: seller,
		Buyer:  msg.Buyer,
		Price:  msg.Price,
		Nonce:  nonce,
		Status: StatusPending,
	}
	// Only one live record may exist for an asset and a seller.
	if err := h.bucket.Create(db, key, escrow); err != nil {
		return nil, errors.Wrap(err, "record already exists")
	}

	conf, err := loadConfiguration(db)
	if err != nil {
		return nil, err
	}
	if conf.RecordDeposit > 0 {
		if err := settle(db, h.bank, seller, key, conf.RecordDeposit); err != nil {
			return nil, errors.Wrap(err, "record deposit")
		}
	}

	logTransition(ctx, key, escrow)
	return &nftswap.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateEscrowHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*CreateMsg, nftswap.Address, error) {
	var msg CreateMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	seller := x.MainSigner(ctx, h.auth)
	if seller == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "seller signature missing")
	}
	if err := seller.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "seller")
	}
	return &msg, seller, nil
}

// DepositEscrowHandler hands the asset over to the record.
type DepositEscrowHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	custody custodyAdapter
}

var _ nftswap.Handler = DepositEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h DepositEscrowHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: depositEscrowCost}, nil
}

// Deliver moves the asset into the record custody.
func (h DepositEscrowHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.custody.deposit(ctx, db, escrow, CollectionRefFrom(msg.Accounts)); err != nil {
		return nil, err
	}
	escrow.Status = StatusDeposited
	if err := h.bucket.Put(db, msg.EscrowID, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	logTransition(ctx, msg.EscrowID, escrow)
	return &nftswap.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h DepositEscrowHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*DepositMsg, *Escrow, error) {
	var msg DepositMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if escrow.Status != StatusPending {
		return nil, nil, errors.Wrapf(ErrEscrowNotPending, "status %s", escrow.Status)
	}
	if err := checkSeller(escrow, msg.Seller); err != nil {
		return nil, nil, err
	}
	if err := checkAsset(escrow, msg.Asset); err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, escrow.Seller) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "seller signature missing")
	}
	return &msg, escrow, nil
}

// BuyEscrowHandler completes the swap.
type BuyEscrowHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	custody custodyAdapter
	bank    CoinMover
}

var _ nftswap.Handler = BuyEscrowHandler{}

// Check verifies the offer can be taken by the buyer, without moving
// anything.
func (h BuyEscrowHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := checkBuyer(escrow, msg.Buyer); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: buyEscrowCost}, nil
}

// Deliver pays the seller and releases the asset to the buyer.
//
// The payment happens before the buyer check. A rejected buyer fails the
// whole operation and the payment is discarded with it.
func (h BuyEscrowHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := settle(db, h.bank, msg.Buyer, escrow.Seller, escrow.Price); err != nil {
		return nil, err
	}
	if err := checkBuyer(escrow, msg.Buyer); err != nil {
		return nil, err
	}
	if !escrow.HasBuyer() {
		escrow.Buyer = msg.Buyer.Clone()
	}
	if err := h.custody.release(ctx, db, escrow, escrow.Buyer, CollectionRefFrom(msg.Accounts)); err != nil {
		return nil, err
	}
	escrow.Status = StatusCompleted
	if err := h.bucket.Put(db, msg.EscrowID, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	logTransition(ctx, msg.EscrowID, escrow)
	return &nftswap.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h BuyEscrowHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*BuyMsg, *Escrow, error) {
	var msg BuyMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if escrow.Status != StatusDeposited {
		return nil, nil, errors.Wrapf(ErrEscrowNotFunded, "status %s", escrow.Status)
	}
	if err := checkAsset(escrow, msg.Asset); err != nil {
		return nil, nil, err
	}
	if err := checkSeller(escrow, msg.Seller); err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Buyer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "buyer signature missing")
	}
	return &msg, escrow, nil
}

// CancelEscrowHandler returns a deposited asset to the seller.
type CancelEscrowHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	custody custodyAdapter
}

var _ nftswap.Handler = CancelEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CancelEscrowHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: cancelEscrowCost}, nil
}

// Deliver releases the asset back to the seller and clears the buyer.
func (h CancelEscrowHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.custody.release(ctx, db, escrow, escrow.Seller, CollectionRefFrom(msg.Accounts)); err != nil {
		return nil, err
	}
	escrow.Status = StatusCancelled
	escrow.Buyer = nil
	if err := h.bucket.Put(db, msg.EscrowID, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	logTransition(ctx, msg.EscrowID, escrow)
	return &nftswap.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CancelEscrowHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*CancelMsg, *Escrow, error) {
	var msg CancelMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if escrow.Status != StatusDeposited {
		return nil, nil, errors.Wrapf(ErrEscrowNotFunded, "status %s", escrow.Status)
	}
	if err := checkAsset(escrow, msg.Asset); err != nil {
		return nil, nil, err
	}
	if err := checkSeller(escrow, msg.Seller); err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, escrow.Seller) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "seller signature missing")
	}
	return &msg, escrow, nil
}

// CloseEscrowHandler deletes a terminal record.
type CloseEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	bank   CoinMover
}

var _ nftswap.Handler = CloseEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CloseEscrowHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{GasAllocated: closeEscrowCost}, nil
}

// Deliver returns the record deposit to the seller and deletes the
// record.
func (h CloseEscrowHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	reclaimed, err := sweep(db, h.bank, msg.EscrowID, escrow.Seller)
	if err != nil {
		return nil, err
	}
	if err := h.bucket.Delete(db, msg.EscrowID); err != nil {
		return nil, errors.Wrap(err, "cannot delete escrow")
	}
	nftswap.GetLogger(ctx).Info("escrow closed",
		"escrow", msg.EscrowID,
		"reclaimed", reclaimed)
	return &nftswap.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CloseEscrowHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*CloseMsg, *Escrow, error) {
	var msg CloseMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if err := checkSeller(escrow, msg.Seller); err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, escrow.Seller) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "seller signature missing")
	}
	if !escrow.Status.IsTerminal() {
		return nil, nil, errors.Wrapf(ErrEscrowStillActive, "status %s", escrow.Status)
	}
	return &msg, escrow, nil
}

// loadEscrow returns the record stored under id, after making sure it
// can still prove its authority.
func loadEscrow(db nftswap.ReadOnlyKVStore, bucket orm.ModelBucket, id nftswap.Address) (*Escrow, error) {
	var escrow Escrow
	if err := bucket.One(db, id, &escrow); err != nil {
		return nil, errors.Wrap(err, "cannot load escrow from the store")
	}
	if err := verifyAddress(id, &escrow); err != nil {
		return nil, err
	}
	return &escrow, nil
}

func logTransition(ctx nftswap.Context, key nftswap.Address, e *Escrow) {
	nftswap.GetLogger(ctx).Info("escrow status",
		"escrow", key,
		"asset", e.Asset,
		"status", e.Status)
}

// statusQuery lists all records with the status named in the query
// data, for example "Deposited" for all offers open for purchase.
type statusQuery struct {
	bucket orm.ModelBucket
}

func (q statusQuery) Query(db nftswap.ReadOnlyKVStore, mod string, data []byte) ([]nftswap.Model, error) {
	if mod != nftswap.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	status, err := ParseStatus(string(data))
	if err != nil {
		return nil, err
	}
	return q.bucket.ByIndex(db, statusIndex, []byte{byte(status)})
}
