package wallet

import (
	"bytes"

	"github.com/mkohlhaas/base58addr/base58check"
	"github.com/mkohlhaas/base58addr/bcerror"
	"github.com/mkohlhaas/base58addr/curve"
	"github.com/mkohlhaas/base58addr/hashing"
	"github.com/mkohlhaas/base58addr/network"
	"github.com/mkohlhaas/base58addr/script"
)

// Address is a P2PKH or P2SH address. Two addresses are equal when kind,
// network and hash all are, so Address works with == and as a map key.
// Decoding only yields known kinds and networks; Layout, Encode and
// ScriptPubkey panic on a hand built Address holding any other value.
type Address struct {
	Kind    network.AddressKind
	Network network.Network
	Hash    [HashSize]byte
}

// NewAddress assembles an address from its parts.
func NewAddress(kind network.AddressKind, net network.Network, hash [HashSize]byte) Address {
	return Address{Kind: kind, Network: net, Hash: hash}
}

// AddressFromHash is NewAddress for a hash held in a slice.
func AddressFromHash(kind network.AddressKind, net network.Network, hash []byte) (Address, error) {
	if len(hash) != HashSize {
		return Address{}, &bcerror.InvalidLengthError{Length: len(hash)}
	}
	a := Address{Kind: kind, Network: net}
	copy(a.Hash[:], hash)
	return a, nil
}

// https://raw.githubusercontent.com/kallerosenbaum/grokkingbitcoin/master/images/ch03/03-13.svg
// AddressFromKey returns the P2PKH address of a public key. compressed picks
// which SEC serialization gets hashed; the two give different addresses.
func AddressFromKey(net network.Network, pk curve.PublicKey, compressed bool) Address {
	return Address{
		Kind:    network.PubkeyHash,
		Network: net,
		Hash:    hashing.Hash160(curve.Serialize(pk, compressed)),
	}
}

// AddressFromScript returns the P2SH address of a redeem script.
func AddressFromScript(net network.Network, redeem script.Script) Address {
	return Address{
		Kind:    network.ScriptHash,
		Network: net,
		Hash:    hashing.Hash160(redeem),
	}
}

// ScriptPubkey returns the output script paying to a.
func (a Address) ScriptPubkey() script.Script {
	switch a.Kind {
	case network.PubkeyHash:
		return script.PayToPubkeyHash(a.Hash[:])
	case network.ScriptHash:
		return script.PayToScriptHash(a.Hash[:])
	}
	panic("wallet: script for unknown address kind " + a.Kind.String())
}

// Layout returns the 21 bytes that get checksummed: version byte then hash.
func (a Address) Layout() []byte {
	b := make([]byte, 0, addressLayoutLen)
	b = append(b, network.AddressVersion(a.Network, a.Kind))
	return append(b, a.Hash[:]...)
}

// AddressFromLayout parses what Layout produced.
func AddressFromLayout(data []byte) (Address, error) {
	if len(data) != addressLayoutLen {
		return Address{}, &bcerror.InvalidLengthError{Length: len(data)}
	}
	net, kind, err := network.ParseAddressVersion(data[0])
	if err != nil {
		return Address{}, err
	}
	a := Address{Kind: kind, Network: net}
	copy(a.Hash[:], data[1:])
	return a, nil
}

// Encode returns the Base58Check string of a.
func (a Address) Encode() string {
	return base58check.EncodeCheck(a.Layout())
}

// DecodeAddress parses a Base58Check address of any network and kind.
func DecodeAddress(s string) (Address, error) {
	data, err := base58check.DecodeCheck(s)
	if err != nil {
		return Address{}, err
	}
	return AddressFromLayout(data)
}

func (a Address) String() string {
	return a.Encode()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Encode()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	decoded, err := DecodeAddress(string(text))
	if err != nil {
		return err
	}
	*a = decoded
	return nil
}

// Compare orders addresses by kind, then network, then hash.
func (a Address) Compare(b Address) int {
	switch {
	case a.Kind < b.Kind:
		return -1
	case a.Kind > b.Kind:
		return 1
	case a.Network < b.Network:
		return -1
	case a.Network > b.Network:
		return 1
	}
	return bytes.Compare(a.Hash[:], b.Hash[:])
}
