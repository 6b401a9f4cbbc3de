package cash

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

// Controller is the functionality needed by cash.Handler.
// Extension developers can use this to move value between addresses
// as part of their own operations.
type Controller interface {
	// MoveCoins transfers amount from src to dest. It fails when src
	// has insufficient balance or dest would overflow.
	MoveCoins(db nftswap.KVStore, src, dest nftswap.Address, amount uint64) error
	// Balance returns the balance of addr, zero for unknown addresses.
	Balance(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (uint64, error)
	// IssueCoins creates amount out of thin air for dest.
	IssueCoins(db nftswap.KVStore, dest nftswap.Address, amount uint64) error
}

// BaseController is a simple implementation of Controller.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db nftswap.KVStore, src, dest nftswap.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	var sender Wallet
	if err := c.bucket.One(db, src, &sender); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(errors.ErrEmpty, "account %s", src)
		}
		return err
	}
	if sender.Balance < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: have %d, need %d", sender.Balance, amount)
	}
	if src.Equals(dest) {
		return nil
	}

	recipient, err := c.load(db, dest)
	if err != nil {
		return err
	}
	if recipient.Balance+amount < recipient.Balance {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}
	sender.Balance -= amount
	recipient.Balance += amount

	if err := c.bucket.Put(db, src, &sender); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, recipient)
}

// Balance returns the current balance of addr.
func (c BaseController) Balance(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (uint64, error) {
	w, err := c.load(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db nftswap.KVStore, dest nftswap.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := c.load(db, dest)
	if err != nil {
		return err
	}
	if w.Balance+amount < w.Balance {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	w.Balance += amount
	return c.bucket.Put(db, dest, w)
}

func (c BaseController) load(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, err
	}
}
