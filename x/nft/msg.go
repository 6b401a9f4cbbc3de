package nft

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

var _ nftswap.Msg = (*IssueMsg)(nil)
var _ nftswap.Msg = (*TransferMsg)(nil)

const (
	pathIssueMsg    = "nft/issue"
	pathTransferMsg = "nft/transfer"
)

// Path returns the routing path for this message
func (IssueMsg) Path() string {
	return pathIssueMsg
}

// Validate makes sure that this is sensible
func (m *IssueMsg) Validate() error {
	if err := m.ID.Validate(); err != nil {
		return errors.Wrap(err, "id")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(m.Collection) != 0 {
		if err := m.Collection.Validate(); err != nil {
			return errors.Wrap(err, "collection")
		}
	}
	return validateMetadata(m.Name, m.URI)
}

// Asset returns the asset this message creates.
func (m *IssueMsg) Asset() *Asset {
	return &Asset{
		ID:         m.ID,
		Owner:      m.Owner,
		Collection: m.Collection,
		Name:       m.Name,
		URI:        m.URI,
	}
}

// Path returns the routing path for this message
func (TransferMsg) Path() string {
	return pathTransferMsg
}

// Validate makes sure that this is sensible
func (m *TransferMsg) Validate() error {
	if err := m.ID.Validate(); err != nil {
		return errors.Wrap(err, "id")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := m.NewOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	if len(m.Collection) != 0 {
		if err := m.Collection.Validate(); err != nil {
			return errors.Wrap(err, "collection")
		}
	}
	return nil
}
