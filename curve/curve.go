// Package curve defines what the wallet needs from an elliptic curve library:
// checking a secret scalar and deriving its public key. Implementations must
// be pure and safe for concurrent use.
package curve

// SecretSize is the length of a serialized secret scalar.
const SecretSize = 32

// PublicKey serializes itself in SEC format.
type PublicKey interface {
	// SerializeCompressed returns the 33 byte 0x02/0x03 prefixed form.
	SerializeCompressed() []byte
	// SerializeUncompressed returns the 65 byte 0x04 prefixed form.
	SerializeUncompressed() []byte
}

// Provider is the curve capability used by private keys.
type Provider interface {
	// CheckSecret returns an error unless secret is a valid scalar, 1 <= secret < n.
	CheckSecret(secret []byte) error
	// PublicKey derives the public key of secret.
	PublicKey(secret [SecretSize]byte) (PublicKey, error)
}

// Serialize picks the SEC form of pk.
func Serialize(pk PublicKey, compressed bool) []byte {
	if compressed {
		return pk.SerializeCompressed()
	}
	return pk.SerializeUncompressed()
}
