package ecc

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/shnpd/hdwallet/crypto"
)

// Secp256k1 is the Provider backed by github.com/decred/dcrd/dcrec/secp256k1.
// It holds no state.
type Secp256k1 struct{}

// NewSecp256k1 returns the dcrd backed provider.
func NewSecp256k1() Secp256k1 {
	return Secp256k1{}
}

// A compile time check to ensure Secp256k1 implements the Provider interface.
var _ Provider = Secp256k1{}

// parseScalar loads b into a scalar and reports whether it is in [1, n).
func parseScalar(b []byte, s *secp256k1.ModNScalar) bool {
	if len(b) != SecretKeyLen {
		return false
	}
	overflow := s.SetByteSlice(b)
	return !overflow && !s.IsZero()
}

// parsePoint decodes a compressed point.
func parsePoint(b []byte) (*secp256k1.PublicKey, error) {
	if !isCompressedEncoding(b) {
		return nil, ErrInvalidPoint
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return pub, nil
}

// Hash160 implements Provider.
func (Secp256k1) Hash160(data []byte) []byte {
	return btcutil.Hash160(data)
}

// HmacSha512 implements Provider.
func (Secp256k1) HmacSha512(key, data []byte) []byte {
	return crypto.HmacSha512(key, data)
}

// PublicKeyFromSecret implements Provider.
func (Secp256k1) PublicKeyFromSecret(secret []byte) ([]byte, error) {
	var s secp256k1.ModNScalar
	if !parseScalar(secret, &s) {
		return nil, ErrInvalidSecret
	}
	priv := secp256k1.NewPrivateKey(&s)
	defer priv.Zero()

	return priv.PubKey().SerializeCompressed(), nil
}

// TweakSecret implements Provider.
func (Secp256k1) TweakSecret(secret, tweak []byte) ([]byte, error) {
	var s, t secp256k1.ModNScalar
	if !parseScalar(secret, &s) {
		return nil, ErrInvalidSecret
	}
	if len(tweak) != TweakLen || t.SetByteSlice(tweak) {
		return nil, ErrTweakOutOfRange
	}

	s.Add(&t)
	if s.IsZero() {
		return nil, ErrTweakResultInvalid
	}

	out := s.Bytes()
	s.Zero()
	return out[:], nil
}

// TweakPublic implements Provider.
func (Secp256k1) TweakPublic(point, tweak []byte) ([]byte, error) {
	pub, err := parsePoint(point)
	if err != nil {
		return nil, err
	}

	var t secp256k1.ModNScalar
	if len(tweak) != TweakLen || t.SetByteSlice(tweak) {
		return nil, ErrTweakOutOfRange
	}

	var p, tG, sum secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	secp256k1.ScalarBaseMultNonConst(&t, &tG)
	secp256k1.AddNonConst(&p, &tG, &sum)

	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return nil, ErrTweakResultInvalid
	}
	sum.ToAffine()

	return secp256k1.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed(), nil
}

// IsValidSecret implements Provider.
func (Secp256k1) IsValidSecret(b []byte) bool {
	var s secp256k1.ModNScalar
	ok := parseScalar(b, &s)
	s.Zero()
	return ok
}

// IsValidPublicEncoding implements Provider.
func (Secp256k1) IsValidPublicEncoding(b []byte) bool {
	return isCompressedEncoding(b)
}

// IsValidPublicPoint implements Provider.
func (Secp256k1) IsValidPublicPoint(b []byte) bool {
	_, err := parsePoint(b)
	return err == nil
}
