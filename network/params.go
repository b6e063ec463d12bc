// Package network names the networks an address or key belongs to and holds
// the version bytes that tell them apart on the wire.
package network

import (
	"fmt"
	"strings"

	"github.com/mkohlhaas/base58addr/bcerror"
)

// Network is the chain an address or private key is meant for.
type Network uint8

const (
	Main Network = iota
	Test
)

// AddressKind is the method used to produce an address.
type AddressKind uint8

const (
	// PubkeyHash is a pay-to-pubkey-hash (P2PKH) address.
	PubkeyHash AddressKind = iota
	// ScriptHash is a pay-to-script-hash (P2SH) address.
	ScriptHash
)

type addressVersion struct {
	net     Network
	kind    AddressKind
	version byte
}

type privkeyVersion struct {
	net     Network
	version byte
}

// Both directions of every lookup walk these tables.
var (
	addressVersions = [...]addressVersion{
		{Main, PubkeyHash, 0},
		{Main, ScriptHash, 5},
		{Test, PubkeyHash, 111},
		{Test, ScriptHash, 196},
	}
	privkeyVersions = [...]privkeyVersion{
		{Main, 128},
		{Test, 239},
	}
)

// AddressVersion returns the version byte of an address of kind on net.
// It panics for values outside the Network and AddressKind constants.
func AddressVersion(net Network, kind AddressKind) byte {
	for _, v := range addressVersions {
		if v.net == net && v.kind == kind {
			return v.version
		}
	}
	panic(fmt.Sprintf("network: no address version for %v/%v", net, kind))
}

// ParseAddressVersion maps an address version byte back to its network and kind.
func ParseAddressVersion(version byte) (Network, AddressKind, error) {
	for _, v := range addressVersions {
		if v.version == version {
			return v.net, v.kind, nil
		}
	}
	return 0, 0, &bcerror.InvalidVersionError{Version: version}
}

// PrivkeyVersion returns the version byte of a private key on net.
// It panics for values outside the Network constants.
func PrivkeyVersion(net Network) byte {
	for _, v := range privkeyVersions {
		if v.net == net {
			return v.version
		}
	}
	panic(fmt.Sprintf("network: no private key version for %v", net))
}

// ParsePrivkeyVersion maps a private key version byte back to its network.
func ParsePrivkeyVersion(version byte) (Network, error) {
	for _, v := range privkeyVersions {
		if v.version == version {
			return v.net, nil
		}
	}
	return 0, &bcerror.InvalidVersionError{Version: version}
}

func (n Network) String() string {
	switch n {
	case Main:
		return "main"
	case Test:
		return "test"
	}
	return fmt.Sprintf("Network(%d)", uint8(n))
}

// ParseNetwork accepts "main"/"mainnet"/"bitcoin" and "test"/"testnet".
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main", "mainnet", "bitcoin":
		return Main, nil
	case "test", "testnet":
		return Test, nil
	}
	return 0, fmt.Errorf("unknown network %q", s)
}

func (k AddressKind) String() string {
	switch k {
	case PubkeyHash:
		return "p2pkh"
	case ScriptHash:
		return "p2sh"
	}
	return fmt.Sprintf("AddressKind(%d)", uint8(k))
}

// ParseAddressKind accepts "p2pkh"/"pubkeyhash" and "p2sh"/"scripthash".
func ParseAddressKind(s string) (AddressKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p2pkh", "pubkeyhash":
		return PubkeyHash, nil
	case "p2sh", "scripthash":
		return ScriptHash, nil
	}
	return 0, fmt.Errorf("unknown address kind %q", s)
}
