package nft

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap"
)

// Asset is a unique digital asset.
type Asset struct {
	ID    nftswap.Address `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Owner nftswap.Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	// Collection is optional.
	Collection nftswap.Address `protobuf:"bytes,3,opt,name=collection,proto3" json:"collection,omitempty"`
	Name       string          `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	URI        string          `protobuf:"bytes,5,opt,name=uri,proto3" json:"uri,omitempty"`
}

type asset Asset

func (m *asset) Reset()         { *m = asset{} }
func (m *asset) String() string { return proto.CompactTextString(m) }
func (*asset) ProtoMessage()    {}

func (m *Asset) Marshal() ([]byte, error) {
	return proto.Marshal((*asset)(m))
}

func (m *Asset) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*asset)(m))
}

// IssueMsg creates a new asset owned by Owner.
type IssueMsg struct {
	ID         nftswap.Address `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Owner      nftswap.Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Collection nftswap.Address `protobuf:"bytes,3,opt,name=collection,proto3" json:"collection,omitempty"`
	Name       string          `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	URI        string          `protobuf:"bytes,5,opt,name=uri,proto3" json:"uri,omitempty"`
}

type issueMsg IssueMsg

func (m *issueMsg) Reset()         { *m = issueMsg{} }
func (m *issueMsg) String() string { return proto.CompactTextString(m) }
func (*issueMsg) ProtoMessage()    {}

func (m *IssueMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*issueMsg)(m))
}

func (m *IssueMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*issueMsg)(m))
}

// TransferMsg moves an asset from its current owner to NewOwner.
type TransferMsg struct {
	ID         nftswap.Address `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Owner      nftswap.Address `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	NewOwner   nftswap.Address `protobuf:"bytes,3,opt,name=new_owner,json=newOwner,proto3" json:"new_owner,omitempty"`
	Collection nftswap.Address `protobuf:"bytes,4,opt,name=collection,proto3" json:"collection,omitempty"`
}

type transferMsg TransferMsg

func (m *transferMsg) Reset()         { *m = transferMsg{} }
func (m *transferMsg) String() string { return proto.CompactTextString(m) }
func (*transferMsg) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferMsg)(m))
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferMsg)(m))
}
