package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap"
)

// Wallet holds the native balance of a single address.
type Wallet struct {
	Balance uint64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

type wallet Wallet

func (m *wallet) Reset()         { *m = wallet{} }
func (m *wallet) String() string { return proto.CompactTextString(m) }
func (*wallet) ProtoMessage()    {}

func (m *Wallet) Marshal() ([]byte, error) {
	return proto.Marshal((*wallet)(m))
}

func (m *Wallet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*wallet)(m))
}

// SendMsg moves Amount from Source to Destination.
type SendMsg struct {
	Source      nftswap.Address `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Destination nftswap.Address `protobuf:"bytes,2,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      uint64          `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string          `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

type sendMsg SendMsg

func (m *sendMsg) Reset()         { *m = sendMsg{} }
func (m *sendMsg) String() string { return proto.CompactTextString(m) }
func (*sendMsg) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsg)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsg)(m))
}
