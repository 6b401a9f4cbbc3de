package escrow

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

// BucketName is where we store the escrow records
const BucketName = "escrow"

// RecordSize is the length of a serialized Escrow.
const RecordSize = 120

// Status of an escrow record. Transitions only move forward:
// Pending, Deposited, then Completed or Cancelled.
type Status uint8

const (
	StatusPending Status = iota
	StatusDeposited
	StatusCompleted
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusPending:   "Pending",
	StatusDeposited: "Deposited",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Validate returns an error for unknown statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errors.Wrapf(errors.ErrState, "unknown status %d", s)
	}
	return nil
}

// IsTerminal returns true if only close is left for the record.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseStatus returns the status with the given case insensitive name.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInput, "unknown status %q", name)
}

// Escrow is the state of one offer of one asset for one price.
//
// It is serialized into a fixed layout, little endian:
//
//	discriminator(8) asset(32) seller(32) hasBuyer(1) buyer(32)
//	price(8) nonce(1) status(1) reserved(5)
type Escrow struct {
	Asset  nftswap.Address
	Seller nftswap.Address
	// Buyer is nil for an open offer.
	Buyer  nftswap.Address
	Price  uint64
	Nonce  uint8
	Status Status
}

var _ orm.Model = (*Escrow)(nil)

var discriminator = func() []byte {
	h := sha256.Sum256([]byte("account:Escrow"))
	return h[:8]
}()

const (
	offAsset    = 8
	offSeller   = offAsset + nftswap.AddressLength
	offHasBuyer = offSeller + nftswap.AddressLength
	offBuyer    = offHasBuyer + 1
	offPrice    = offBuyer + nftswap.AddressLength
	offNonce    = offPrice + 8
	offStatus   = offNonce + 1
	offReserved = offStatus + 1
)

// HasBuyer returns true if the offer is restricted to a single buyer.
func (e *Escrow) HasBuyer() bool {
	return len(e.Buyer) != 0
}

// Validate ensures the record can be serialized.
func (e *Escrow) Validate() error {
	if err := e.Asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	if err := e.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if e.HasBuyer() {
		if err := e.Buyer.Validate(); err != nil {
			return errors.Wrap(err, "buyer")
		}
	}
	if e.Price == 0 {
		return errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	return e.Status.Validate()
}

// Marshal writes the fixed size binary layout.
func (e *Escrow) Marshal() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	raw := make([]byte, RecordSize)
	copy(raw, discriminator)
	copy(raw[offAsset:], e.Asset)
	copy(raw[offSeller:], e.Seller)
	if e.HasBuyer() {
		raw[offHasBuyer] = 1
		copy(raw[offBuyer:], e.Buyer)
	}
	binary.LittleEndian.PutUint64(raw[offPrice:], e.Price)
	raw[offNonce] = e.Nonce
	raw[offStatus] = byte(e.Status)
	return raw, nil
}

// Unmarshal reads the fixed size binary layout.
func (e *Escrow) Unmarshal(raw []byte) error {
	if len(raw) != RecordSize {
		return errors.Wrapf(errors.ErrInput, "escrow record of %d bytes", len(raw))
	}
	if !bytes.Equal(raw[:offAsset], discriminator) {
		return errors.Wrap(errors.ErrType, "not an escrow record")
	}
	for _, b := range raw[offReserved:] {
		if b != 0 {
			return errors.Wrap(errors.ErrInput, "reserved bytes in use")
		}
	}

	var buyer nftswap.Address
	switch raw[offHasBuyer] {
	case 0:
		for _, b := range raw[offBuyer:offPrice] {
			if b != 0 {
				return errors.Wrap(errors.ErrInput, "buyer set without presence flag")
			}
		}
	case 1:
		buyer = clone(raw[offBuyer:offPrice])
	default:
		return errors.Wrapf(errors.ErrInput, "buyer presence flag %d", raw[offHasBuyer])
	}

	status := Status(raw[offStatus])
	if err := status.Validate(); err != nil {
		return err
	}

	*e = Escrow{
		Asset:  clone(raw[offAsset:offSeller]),
		Seller: clone(raw[offSeller:offHasBuyer]),
		Buyer:  buyer,
		Price:  binary.LittleEndian.Uint64(raw[offPrice:offNonce]),
		Nonce:  raw[offNonce],
		Status: status,
	}
	return nil
}

func clone(b []byte) nftswap.Address {
	return nftswap.Address(b).Clone()
}

// NewBucket returns a bucket for storing escrow records by their
// derived address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Escrow{},
		orm.WithIndex(statusIndex, idxStatus),
		orm.WithIndex(sellerIndex, idxSeller),
	)
}

const (
	statusIndex = "status"
	sellerIndex = "seller"
)

func toEscrow(m orm.Model) (*Escrow, error) {
	e, ok := m.(*Escrow)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", m)
	}
	return e, nil
}

func idxStatus(m orm.Model) ([][]byte, error) {
	e, err := toEscrow(m)
	if err != nil {
		return nil, err
	}
	return [][]byte{{byte(e.Status)}}, nil
}

func idxSeller(m orm.Model) ([][]byte, error) {
	e, err := toEscrow(m)
	if err != nil {
		return nil, err
	}
	return [][]byte{e.Seller}, nil
}
