// Package secp256k1 implements curve.Provider with btcec.
package secp256k1

import (
	"github.com/btcsuite/btcd/btcec/v2"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mkohlhaas/base58addr/bcerror"
	"github.com/mkohlhaas/base58addr/curve"
	"github.com/pkg/errors"
)

// Provider is the secp256k1 curve. The zero value is ready to use.
type Provider struct{}

var _ curve.Provider = Provider{}

// CheckSecret rejects anything that is not 32 bytes or not in [1, n).
func (Provider) CheckSecret(secret []byte) error {
	if len(secret) != curve.SecretSize {
		return errors.Wrapf(bcerror.ErrSecretKeyInvalid, "secret is %d bytes", len(secret))
	}
	var s secp.ModNScalar
	if overflow := s.SetByteSlice(secret); overflow {
		return errors.Wrap(bcerror.ErrSecretKeyInvalid, "secret is not below the curve order")
	}
	if s.IsZero() {
		return errors.Wrap(bcerror.ErrSecretKeyInvalid, "secret is zero")
	}
	return nil
}

// PublicKey returns secret*G.
func (p Provider) PublicKey(secret [curve.SecretSize]byte) (curve.PublicKey, error) {
	if err := p.CheckSecret(secret[:]); err != nil {
		return nil, err
	}
	_, pub := btcec.PrivKeyFromBytes(secret[:])
	return pub, nil
}

// ParsePublicKey parses a compressed, uncompressed or hybrid SEC public key.
func ParsePublicKey(b []byte) (curve.PublicKey, error) {
	pk, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing public key")
	}
	return pk, nil
}
