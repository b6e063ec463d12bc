// Package hashing provides the digests used by addresses and Base58Check.
package hashing

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Sizes of the digests returned by this package.
const (
	Hash160Size  = ripemd160.Size
	ChecksumSize = 4
)

// https://raw.githubusercontent.com/kallerosenbaum/grokkingbitcoin/master/images/ch03/03-06.svg
// Hash160 returns ripemd160(sha256(b)), the 20 byte identifier of a public key or script.
func Hash160(b []byte) [Hash160Size]byte {
	sha := sha256.Sum256(b)
	hasher := ripemd160.New()
	// hash.Hash never returns an error from Write.
	_, _ = hasher.Write(sha[:])
	var out [Hash160Size]byte
	copy(out[:], hasher.Sum(nil))
	return out
}

// DoubleSHA256 returns sha256(sha256(b)).
func DoubleSHA256(b []byte) [sha256.Size]byte {
	fst := sha256.Sum256(b)
	return sha256.Sum256(fst[:])
}

// Checksum is the first 4 bytes of the double sha256 of payload.
func Checksum(payload []byte) [ChecksumSize]byte {
	h := DoubleSHA256(payload)
	var ck [ChecksumSize]byte
	copy(ck[:], h[:ChecksumSize])
	return ck
}
