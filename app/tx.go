package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x/sigs"
)

// Tx is the only transaction format accepted by the application. It
// carries a single message, identified by its routing path, and the
// signatures of all parties that authorize it.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	Route      string               `protobuf:"bytes,2,opt,name=route,proto3" json:"route,omitempty"`
	Msg        []byte               `protobuf:"bytes,3,opt,name=msg,proto3" json:"msg,omitempty"`
}

type tx Tx

func (m *tx) Reset()         { *m = tx{} }
func (m *tx) String() string { return proto.CompactTextString(m) }
func (*tx) ProtoMessage()    {}

var _ nftswap.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps msg into an unsigned transaction.
func NewTx(msg nftswap.Msg) (*Tx, error) {
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal msg")
	}
	return &Tx{Route: msg.Path(), Msg: raw}, nil
}

func (m *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*tx)(m))
}

func (m *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*tx)(m))
}

// MsgPath returns the routing path of the carried message.
func (m *Tx) MsgPath() string {
	return m.Route
}

// MsgBytes returns the serialized message.
func (m *Tx) MsgBytes() []byte {
	return m.Msg
}

// GetSignatures returns all signatures attached to the transaction.
func (m *Tx) GetSignatures() []*sigs.StdSignature {
	return m.Signatures
}

// GetSignBytes returns the bytes that every signer signs. This is the
// serialized transaction without any signatures.
func (m *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Route: m.Route, Msg: m.Msg}
	return unsigned.Marshal()
}

// Sign appends a signature of signer, using the given sequence.
func (m *Tx) Sign(signer sigs.Signer, chainID string, seq int64) error {
	sig, err := sigs.SignTx(signer, m, chainID, seq)
	if err != nil {
		return err
	}
	m.Signatures = append(m.Signatures, sig)
	return nil
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (nftswap.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if tx.Route == "" {
		return nil, errors.Wrap(errors.ErrMsg, "missing message path")
	}
	return tx, nil
}
