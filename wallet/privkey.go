package wallet

import (
	"fmt"

	"github.com/mkohlhaas/base58addr/base58check"
	"github.com/mkohlhaas/base58addr/bcerror"
	"github.com/mkohlhaas/base58addr/curve"
	"github.com/mkohlhaas/base58addr/network"
	"github.com/pkg/errors"
)

// Privkey is a secret key together with the network it is used on and
// whether its public key is serialized compressed.
type Privkey struct {
	Compressed bool
	Network    network.Network
	Secret     [curve.SecretSize]byte
}

// NewPrivkey assembles a private key. The secret is not checked.
func NewPrivkey(net network.Network, secret [curve.SecretSize]byte, compressed bool) Privkey {
	return Privkey{Compressed: compressed, Network: net, Secret: secret}
}

// PublicKey derives the public key of k.
func (k Privkey) PublicKey(c curve.Provider) (curve.PublicKey, error) {
	pk, err := c.PublicKey(k.Secret)
	if err != nil {
		return nil, &bcerror.DerivationError{Err: err}
	}
	return pk, nil
}

// ToAddress returns the P2PKH address k controls on its network.
func (k Privkey) ToAddress(c curve.Provider) (Address, error) {
	pk, err := k.PublicKey(c)
	if err != nil {
		return Address{}, err
	}
	return AddressFromKey(k.Network, pk, k.Compressed), nil
}

// Layout returns version byte, secret and the compression suffix if any.
func (k Privkey) Layout() []byte {
	b := make([]byte, 0, compressedPrivkeyLayoutLen)
	b = append(b, network.PrivkeyVersion(k.Network))
	b = append(b, k.Secret[:]...)
	if k.Compressed {
		b = append(b, compressedSuffix)
	}
	return b
}

// PrivkeyFromLayout parses what Layout produced. The secret must be accepted
// by c, otherwise bcerror.ErrSecretKeyInvalid is returned. The value of the
// suffix byte is not checked, only its presence.
func PrivkeyFromLayout(data []byte, c curve.Provider) (Privkey, error) {
	var compressed bool
	switch len(data) {
	case privkeyLayoutLen:
	case compressedPrivkeyLayoutLen:
		compressed = true
	default:
		return Privkey{}, &bcerror.InvalidLengthError{Length: len(data)}
	}
	net, err := network.ParsePrivkeyVersion(data[0])
	if err != nil {
		return Privkey{}, err
	}
	secret := data[1:privkeyLayoutLen]
	if err := c.CheckSecret(secret); err != nil {
		if !errors.Is(err, bcerror.ErrSecretKeyInvalid) {
			err = errors.Wrap(bcerror.ErrSecretKeyInvalid, err.Error())
		}
		return Privkey{}, err
	}
	k := Privkey{Compressed: compressed, Network: net}
	copy(k.Secret[:], secret)
	return k, nil
}

// Encode returns the WIF string of k.
func (k Privkey) Encode() string {
	return base58check.EncodeCheck(k.Layout())
}

// DecodePrivkey parses a WIF string.
func DecodePrivkey(s string, c curve.Provider) (Privkey, error) {
	data, err := base58check.DecodeCheck(s)
	if err != nil {
		return Privkey{}, err
	}
	return PrivkeyFromLayout(data, c)
}

// String leaves the secret out so keys can be logged.
func (k Privkey) String() string {
	form := "uncompressed"
	if k.Compressed {
		form = "compressed"
	}
	return fmt.Sprintf("Privkey(%s, %s)", k.Network, form)
}

func (k Privkey) GoString() string {
	return k.String()
}
