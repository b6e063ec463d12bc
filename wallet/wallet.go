// Package wallet holds the two values users copy around as Base58Check
// strings: addresses and private keys.
//
// https://raw.githubusercontent.com/kallerosenbaum/grokkingbitcoin/master/images/ch03/u03-14.svg
// Both are laid out as a version byte followed by the payload before the
// checksum is appended:
//
//	address:     version(1) | hash160(20)
//	private key: version(1) | secret(32) [| 0x01 if the public key is compressed]
package wallet

import (
	"github.com/mkohlhaas/base58addr/curve"
	"github.com/mkohlhaas/base58addr/hashing"
)

// Layout lengths, version byte included.
const (
	HashSize = hashing.Hash160Size

	addressLayoutLen           = 1 + HashSize
	privkeyLayoutLen           = 1 + curve.SecretSize
	compressedPrivkeyLayoutLen = privkeyLayoutLen + 1

	compressedSuffix = byte(0x01)
)
