package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

const (
	pathCreateMsg  = "escrow/create"
	pathDepositMsg = "escrow/deposit"
	pathBuyMsg     = "escrow/buy"
	pathCancelMsg  = "escrow/cancel"
	pathCloseMsg   = "escrow/close"

	maxAccounts = 8
)

var (
	_ nftswap.Msg = (*CreateMsg)(nil)
	_ nftswap.Msg = (*DepositMsg)(nil)
	_ nftswap.Msg = (*BuyMsg)(nil)
	_ nftswap.Msg = (*CancelMsg)(nil)
	_ nftswap.Msg = (*CloseMsg)(nil)
)

// Path returns the routing path for this message
func (CreateMsg) Path() string {
	return pathCreateMsg
}

// Validate makes sure that this is sensible
func (m *CreateMsg) Validate() error {
	if err := m.Asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	if m.Price == 0 {
		return errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	if len(m.Buyer) != 0 {
		if err := m.Buyer.Validate(); err != nil {
			return errors.Wrap(err, "buyer")
		}
	}
	return nil
}

// Path returns the routing path for this message
func (DepositMsg) Path() string {
	return pathDepositMsg
}

// Validate makes sure that this is sensible
func (m *DepositMsg) Validate() error {
	return validateParties(m.EscrowID, m.Asset, m.Seller, m.Accounts)
}

// Path returns the routing path for this message
func (BuyMsg) Path() string {
	return pathBuyMsg
}

// Validate makes sure that this is sensible
func (m *BuyMsg) Validate() error {
	if err := m.Buyer.Validate(); err != nil {
		return errors.Wrap(err, "buyer")
	}
	return validateParties(m.EscrowID, m.Asset, m.Seller, m.Accounts)
}

// Path returns the routing path for this message
func (CancelMsg) Path() string {
	return pathCancelMsg
}

// Validate makes sure that this is sensible
func (m *CancelMsg) Validate() error {
	return validateParties(m.EscrowID, m.Asset, m.Seller, m.Accounts)
}

// Path returns the routing path for this message
func (CloseMsg) Path() string {
	return pathCloseMsg
}

// Validate makes sure that this is sensible
func (m *CloseMsg) Validate() error {
	if err := m.EscrowID.Validate(); err != nil {
		return errors.Wrap(err, "escrow id")
	}
	if err := m.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	return nil
}

func validateParties(id, asset, seller nftswap.Address, accounts [][]byte) error {
	if err := id.Validate(); err != nil {
		return errors.Wrap(err, "escrow id")
	}
	if err := asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	if err := seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if len(accounts) > maxAccounts {
		return errors.Wrapf(errors.ErrInput, "at most %d accounts", maxAccounts)
	}
	for i, a := range accounts {
		if err := nftswap.Address(a).Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
