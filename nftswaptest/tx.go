package nftswaptest

import "github.com/iov-one/nftswap"

// Tx represents a transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg nftswap.Msg
}

var _ nftswap.Tx = (*Tx)(nil)

func (tx *Tx) MsgPath() string {
	if tx.Msg == nil {
		return ""
	}
	return tx.Msg.Path()
}

// MsgBytes serializes the message. It panics if the message cannot be
// serialized, because a test can never recover from that.
func (tx *Tx) MsgBytes() []byte {
	if tx.Msg == nil {
		return nil
	}
	bz, err := tx.Msg.Marshal()
	if err != nil {
		panic(err)
	}
	return bz
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

// Msg represents a message that is routed by path and carries
// arbitrary bytes.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ nftswap.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
