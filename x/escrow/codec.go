package escrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap"
)

// CreateMsg offers Asset for Price. The seller is the main signer.
type CreateMsg struct {
	Asset nftswap.Address `protobuf:"bytes,1,opt,name=asset,proto3" json:"asset,omitempty"`
	Price uint64          `protobuf:"varint,2,opt,name=price,proto3" json:"price,omitempty"`
	// Buyer restricts the offer to a single buyer. Empty for an open
	// offer.
	Buyer nftswap.Address `protobuf:"bytes,3,opt,name=buyer,proto3" json:"buyer,omitempty"`
}

type createMsg CreateMsg

func (m *createMsg) Reset()         { *m = createMsg{} }
func (m *createMsg) String() string { return proto.CompactTextString(m) }
func (*createMsg) ProtoMessage()    {}

func (m *CreateMsg) Marshal() ([]byte, error)   { return proto.Marshal((*createMsg)(m)) }
func (m *CreateMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*createMsg)(m)) }

// DepositMsg moves the asset from the seller into the escrow.
type DepositMsg struct {
	EscrowID nftswap.Address `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	Asset    nftswap.Address `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Seller   nftswap.Address `protobuf:"bytes,3,opt,name=seller,proto3" json:"seller,omitempty"`
	// Accounts are auxiliary references passed to the custody service.
	Accounts [][]byte `protobuf:"bytes,4,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

type depositMsg DepositMsg

func (m *depositMsg) Reset()         { *m = depositMsg{} }
func (m *depositMsg) String() string { return proto.CompactTextString(m) }
func (*depositMsg) ProtoMessage()    {}

func (m *DepositMsg) Marshal() ([]byte, error)   { return proto.Marshal((*depositMsg)(m)) }
func (m *DepositMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*depositMsg)(m)) }

// BuyMsg pays the price and takes the asset out of the escrow.
type BuyMsg struct {
	EscrowID nftswap.Address `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	Asset    nftswap.Address `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Seller   nftswap.Address `protobuf:"bytes,3,opt,name=seller,proto3" json:"seller,omitempty"`
	Buyer    nftswap.Address `protobuf:"bytes,4,opt,name=buyer,proto3" json:"buyer,omitempty"`
	Accounts [][]byte        `protobuf:"bytes,5,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

type buyMsg BuyMsg

func (m *buyMsg) Reset()         { *m = buyMsg{} }
func (m *buyMsg) String() string { return proto.CompactTextString(m) }
func (*buyMsg) ProtoMessage()    {}

func (m *BuyMsg) Marshal() ([]byte, error)   { return proto.Marshal((*buyMsg)(m)) }
func (m *BuyMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*buyMsg)(m)) }

// CancelMsg returns a deposited asset to the seller.
type CancelMsg struct {
	EscrowID nftswap.Address `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	Asset    nftswap.Address `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Seller   nftswap.Address `protobuf:"bytes,3,opt,name=seller,proto3" json:"seller,omitempty"`
	Accounts [][]byte        `protobuf:"bytes,4,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

type cancelMsg CancelMsg

func (m *cancelMsg) Reset()         { *m = cancelMsg{} }
func (m *cancelMsg) String() string { return proto.CompactTextString(m) }
func (*cancelMsg) ProtoMessage()    {}

func (m *CancelMsg) Marshal() ([]byte, error)   { return proto.Marshal((*cancelMsg)(m)) }
func (m *CancelMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*cancelMsg)(m)) }

// CloseMsg deletes a terminal escrow record.
type CloseMsg struct {
	EscrowID nftswap.Address `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	Seller   nftswap.Address `protobuf:"bytes,2,opt,name=seller,proto3" json:"seller,omitempty"`
}

type closeMsg CloseMsg

func (m *closeMsg) Reset()         { *m = closeMsg{} }
func (m *closeMsg) String() string { return proto.CompactTextString(m) }
func (*closeMsg) ProtoMessage()    {}

func (m *CloseMsg) Marshal() ([]byte, error)   { return proto.Marshal((*closeMsg)(m)) }
func (m *CloseMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*closeMsg)(m)) }

// Configuration is set at genesis.
type Configuration struct {
	// RecordDeposit is paid by the seller into the record address on
	// create and returned on close. Zero disables it.
	RecordDeposit uint64 `protobuf:"varint,1,opt,name=record_deposit,json=recordDeposit,proto3" json:"record_deposit,omitempty"`
}

type configuration Configuration

func (m *configuration) Reset()         { *m = configuration{} }
func (m *configuration) String() string { return proto.CompactTextString(m) }
func (*configuration) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configuration)(m)) }
func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configuration)(m))
}
