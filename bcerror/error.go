// Package bcerror holds the errors reported when decoding addresses and keys.
package bcerror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChecksum is returned when the trailing 4 bytes of a Base58Check
	// string do not match the double-sha256 of the rest.
	ErrInvalidChecksum = errors.New("invalid base58check checksum")

	// ErrSecretKeyInvalid is returned when a secret is not a valid scalar,
	// i.e. not in [1, n).
	ErrSecretKeyInvalid = errors.New("secret key out of range")

	// ErrCurveDerivationFailed matches every *DerivationError.
	ErrCurveDerivationFailed = errors.New("public key derivation failed")
)

// InvalidCharacterError reports a character outside the base58 alphabet.
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base58 character %q at position %d", e.Char, e.Pos)
}

// InvalidLengthError reports a decoded payload whose length fits no layout.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid payload length %d", e.Length)
}

// InvalidVersionError reports a version byte missing from the version table.
type InvalidVersionError struct {
	Version byte
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version byte %d", e.Version)
}

// DerivationError wraps the curve provider's failure to derive a public key.
type DerivationError struct {
	Err error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrCurveDerivationFailed, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCurveDerivationFailed) hold.
func (e *DerivationError) Is(target error) bool {
	return target == ErrCurveDerivationFailed
}
