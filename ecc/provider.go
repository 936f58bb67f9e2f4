// Package ecc provides the secp256k1 primitives the extended key engine is
// built on: hashing, HMAC, public key computation, scalar and point tweaking
// and key validity checks.
//
// Two interchangeable backends are available. Secp256k1 is backed by the
// dcrd secp256k1 package and is the default. BigCurve performs the same
// operations with math/big affine arithmetic and exists mostly as an
// independent cross-check. A Context wraps either backend with an explicit
// create/randomize/destroy lifecycle.
package ecc

import (
	"github.com/pkg/errors"
)

const (
	// SecretKeyLen is the length of a serialized secret scalar.
	SecretKeyLen = 32

	// PubKeyLen is the length of a compressed public key.
	PubKeyLen = 33

	// TweakLen is the length of a tweak scalar.
	TweakLen = 32

	pubKeyEven = 0x02
	pubKeyOdd  = 0x03
)

var (
	// ErrTweakOutOfRange is returned when a tweak is not strictly less
	// than the curve order.
	ErrTweakOutOfRange = errors.New("tweak is not less than the curve order")

	// ErrTweakResultInvalid is returned when applying a tweak yields the
	// zero scalar or the point at infinity.
	ErrTweakResultInvalid = errors.New("tweak result is zero or infinity")

	// ErrInvalidSecret is returned when an operation is handed a secret
	// that is not a valid scalar.
	ErrInvalidSecret = errors.New("invalid secret key")

	// ErrInvalidPoint is returned when an operation is handed bytes that
	// do not decode to a compressed point on the curve.
	ErrInvalidPoint = errors.New("invalid public key point")

	// ErrContextDestroyed is the panic value raised when a destroyed
	// Context is used.
	ErrContextDestroyed = errors.New("ecc context used after destroy")
)

// Provider is the set of primitives consumed by the extended key engine.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Hash160 returns ripemd160(sha256(data)).
	Hash160(data []byte) []byte

	// HmacSha512 returns the 64 byte HMAC-SHA512 of data keyed by key.
	HmacSha512(key, data []byte) []byte

	// PublicKeyFromSecret returns the compressed public key for a valid
	// 32 byte secret.
	PublicKeyFromSecret(secret []byte) ([]byte, error)

	// TweakSecret returns (secret + tweak) mod n.
	TweakSecret(secret, tweak []byte) ([]byte, error)

	// TweakPublic returns point + tweak*G in compressed form.
	TweakPublic(point, tweak []byte) ([]byte, error)

	// IsValidSecret reports whether b is a 32 byte scalar in [1, n).
	IsValidSecret(b []byte) bool

	// IsValidPublicEncoding reports whether b has the length and prefix of
	// a compressed point.
	IsValidPublicEncoding(b []byte) bool

	// IsValidPublicPoint reports whether b decodes to a point on the curve.
	IsValidPublicPoint(b []byte) bool
}

// Blinder is implemented by backends that can use a random blinding value
// to mask base point multiplication.
type Blinder interface {
	SetBlinding(seed []byte)
}

// isCompressedEncoding checks only the shape of a compressed point.
func isCompressedEncoding(b []byte) bool {
	if len(b) != PubKeyLen {
		return false
	}
	return b[0] == pubKeyEven || b[0] == pubKeyOdd
}
