// Package base58check implements Base58Check: base58 with the Bitcoin alphabet
// over a payload followed by the first 4 bytes of its double sha256.
package base58check

import (
	"bytes"
	"strings"

	"github.com/mkohlhaas/base58addr/bcerror"
	"github.com/mkohlhaas/base58addr/hashing"
	"github.com/mr-tron/base58"
)

// Alphabet is the Bitcoin base58 alphabet: no 0, O, I or l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Encode converts b to base58. Every leading zero byte becomes a leading '1'.
func Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return base58.Encode(b)
}

// Decode converts a base58 string back to bytes. Every leading '1' becomes a
// leading zero byte.
func Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return nil, &bcerror.InvalidCharacterError{Char: s[i], Pos: i}
		}
	}
	if len(s) == 0 {
		return []byte{}, nil
	}
	return base58.Decode(s)
}

// EncodeCheck appends the checksum to payload and encodes the result.
func EncodeCheck(payload []byte) string {
	ck := hashing.Checksum(payload)
	b := make([]byte, 0, len(payload)+hashing.ChecksumSize)
	b = append(b, payload...)
	b = append(b, ck[:]...)
	return Encode(b)
}

// https://raw.githubusercontent.com/kallerosenbaum/grokkingbitcoin/master/images/ch03/03-15.svg
// DecodeCheck decodes s, verifies its checksum and returns the payload without it.
func DecodeCheck(s string) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) < hashing.ChecksumSize {
		return nil, &bcerror.InvalidLengthError{Length: len(b)}
	}
	payload := b[:len(b)-hashing.ChecksumSize]
	ck := hashing.Checksum(payload)
	if !bytes.Equal(ck[:], b[len(payload):]) {
		return nil, bcerror.ErrInvalidChecksum
	}
	return payload, nil
}
