package nftswap

import (
	"github.com/iov-one/nftswap/errors"
)

// Msg is message for the application to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	Path() string

	// Validate performs a sanity check of the message. It does not
	// access the store.
	Validate() error
}

// Marshaller is anything that can be represented in binary
//
// Marshall may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represent the data sent from the user to the chain.
// It includes the serialized message, along with information needed
// to authenticate the sender (cryptographic signatures).
type Tx interface {
	Persistent

	// MsgPath returns the path of the carried message.
	MsgPath() string

	// MsgBytes returns the serialized message.
	MsgBytes() []byte
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	if tx == nil || tx.MsgPath() == "" {
		return "(missing)"
	}
	return tx.MsgPath()
}

// LoadMsg decodes the message carried by the transaction into dest and
// validates it. It fails if the transaction carries a message of a
// different kind.
func LoadMsg(tx Tx, dest Msg) error {
	if tx.MsgPath() != dest.Path() {
		return errors.Wrapf(errors.ErrType, "want %q message, got %q", dest.Path(), tx.MsgPath())
	}
	if err := dest.Unmarshal(tx.MsgBytes()); err != nil {
		return errors.Wrap(errors.ErrMsg, err.Error())
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
