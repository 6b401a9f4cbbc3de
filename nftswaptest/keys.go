package nftswaptest

import (
	"crypto/rand"

	"github.com/iov-one/nftswap"
	"golang.org/x/crypto/ed25519"
)

// Key is an ed25519 key pair used to sign test transactions.
type Key struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// NewKey generates a fresh random key pair. It panics if the system
// randomness source fails.
func NewKey() *Key {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return &Key{Public: pub, Private: priv}
}

// Address returns the identity of the key owner.
func (k *Key) Address() nftswap.Address {
	return nftswap.Address(k.Public)
}

// Sign signs the message with the private key.
func (k *Key) Sign(msg []byte) []byte {
	return ed25519.Sign(k.Private, msg)
}

// NewAddress returns the address of a freshly generated key.
func NewAddress() nftswap.Address {
	return NewKey().Address()
}

// SequenceAddress returns a deterministic, human readable address. It is
// never a valid signer.
func SequenceAddress(n byte) nftswap.Address {
	addr := make(nftswap.Address, nftswap.AddressLength)
	addr[nftswap.AddressLength-1] = n
	return addr
}
