package sigs

import (
	"github.com/gogo/protobuf/proto"
)

// StdSignature represents the signature, the identity of the signer
// (the Pubkey), and a sequence number to prevent replay attacks.
type StdSignature struct {
	Sequence  int64  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    []byte `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

// stdSignature is the wire form. It carries no Marshal method so that
// the protobuf reflection codec handles it.
type stdSignature StdSignature

func (m *stdSignature) Reset()         { *m = stdSignature{} }
func (m *stdSignature) String() string { return proto.CompactTextString(m) }
func (*stdSignature) ProtoMessage()    {}

func (m *StdSignature) Marshal() ([]byte, error) {
	return proto.Marshal((*stdSignature)(m))
}

func (m *StdSignature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stdSignature)(m))
}

func (m *StdSignature) GetSequence() int64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

// UserData is the state stored for every signer.
type UserData struct {
	Pubkey   []byte `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64  `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

type userData UserData

func (m *userData) Reset()         { *m = userData{} }
func (m *userData) String() string { return proto.CompactTextString(m) }
func (*userData) ProtoMessage()    {}

func (m *UserData) Marshal() ([]byte, error) {
	return proto.Marshal((*userData)(m))
}

func (m *UserData) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*userData)(m))
}
