// Package key 实现BIP32分层确定性扩展密钥：序列化、校验、子密钥派生与公钥化
//
// An ExtendedKey is an immutable value. It is produced only by the validating
// constructor (directly, by NewMaster, by decoding, or by derivation), so every
// instance satisfies the BIP32 invariants and derivation does not re-check
// them.
package key

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/shnpd/hdwallet/ecc"
	"github.com/shnpd/hdwallet/netparams"
)

const (
	// ChainCodeLen 链码长度
	ChainCodeLen = 32

	// HardenedKeyStart is the index at which hardened child keys begin.
	HardenedKeyStart = uint32(0x80000000) // 2^31

	// MaxDepth is the deepest level a key may sit at. Deriving from a key
	// at this depth fails with ErrMaxDepthExceeded.
	MaxDepth = 255
)

// ExtendedKey 扩展密钥：密钥、链码及派生元数据
type ExtendedKey struct {
	net        netparams.Network
	isPrivate  bool
	key        []byte // 32 byte secret or 33 byte compressed point
	chainCode  [ChainCodeLen]byte
	parentFP   uint32
	depth      uint8
	childIndex uint32

	prov ecc.Provider
}

// Engine builds extended keys on top of a primitive provider. Keys inherit
// the provider of the engine that built them; it is used for derivation and
// neutering.
type Engine struct {
	prov ecc.Provider
}

// NewEngine returns an engine using prov for every curve operation.
func NewEngine(prov ecc.Provider) *Engine {
	return &Engine{prov: prov}
}

// defaultEngine backs the package level constructors with the process wide
// ecc context. The context is created on first use, so importing the package
// does not touch the random source.
func defaultEngine() *Engine {
	return NewEngine(ecc.Default())
}

// NewExtendedKey is the single validating constructor. key is a 32 byte
// secret when isPrivate is set and a 33 byte compressed point otherwise.
func (e *Engine) NewExtendedKey(net netparams.Network, isPrivate bool,
	key, chainCode []byte, parentFP uint32, depth uint8,
	childIndex uint32) (*ExtendedKey, error) {

	if !net.Valid() {
		return nil, errors.Wrapf(ErrUnknownNetwork, "network %v", net)
	}
	if len(chainCode) != ChainCodeLen {
		return nil, errors.Wrapf(ErrWrongDataLength, "chain code is %d "+
			"bytes, want %d", len(chainCode), ChainCodeLen)
	}

	if isPrivate {
		if len(key) != ecc.SecretKeyLen {
			return nil, errors.Wrapf(ErrInvalidPrivateKeyLength,
				"private key is %d bytes", len(key))
		}
		if !e.prov.IsValidSecret(key) {
			return nil, ErrInvalidSecretKey
		}
	} else {
		if !e.prov.IsValidPublicEncoding(key) {
			return nil, ErrInvalidPublicKeyEncoding
		}
		if !e.prov.IsValidPublicPoint(key) {
			return nil, ErrInvalidPublicKey
		}
	}

	if depth == 0 {
		if parentFP != 0 {
			return nil, errors.Wrapf(ErrZeroDepthNonZeroFingerprint,
				"fingerprint %08x", parentFP)
		}
		if childIndex != 0 {
			return nil, errors.Wrapf(ErrZeroDepthNonZeroIndex,
				"index %d", childIndex)
		}
	}

	k := &ExtendedKey{
		net:        net,
		isPrivate:  isPrivate,
		key:        append([]byte(nil), key...),
		parentFP:   parentFP,
		depth:      depth,
		childIndex: childIndex,
		prov:       e.prov,
	}
	copy(k.chainCode[:], chainCode)
	return k, nil
}

// NewExtendedKey validates and builds an extended key with the process wide
// ecc context.
func NewExtendedKey(net netparams.Network, isPrivate bool, key,
	chainCode []byte, parentFP uint32, depth uint8,
	childIndex uint32) (*ExtendedKey, error) {

	return defaultEngine().NewExtendedKey(
		net, isPrivate, key, chainCode, parentFP, depth, childIndex,
	)
}

// Network returns the network the key belongs to.
func (k *ExtendedKey) Network() netparams.Network {
	return k.net
}

// IsPrivate reports whether the key holds a secret scalar.
func (k *ExtendedKey) IsPrivate() bool {
	return k.isPrivate
}

// Depth returns the number of derivation steps from the master key.
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ParentFingerprint returns the fingerprint of the parent's public key, zero
// for a master key.
func (k *ExtendedKey) ParentFingerprint() uint32 {
	return k.parentFP
}

// ChildIndex returns the raw index, hardened bit included.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childIndex
}

// IsHardened reports whether the key was produced by hardened derivation.
func (k *ExtendedKey) IsHardened() bool {
	return k.childIndex >= HardenedKeyStart
}

// ChainCode returns a copy of the chain code.
func (k *ExtendedKey) ChainCode() []byte {
	return append([]byte(nil), k.chainCode[:]...)
}

// Key returns a copy of the raw key material: the 32 byte secret for a
// private key, the compressed point otherwise.
func (k *ExtendedKey) Key() []byte {
	return append([]byte(nil), k.key...)
}

// PublicKey returns the compressed public key, computing it from the secret
// for a private key.
func (k *ExtendedKey) PublicKey() []byte {
	return append([]byte(nil), k.pubKeyBytes()...)
}

// Fingerprint returns the first four bytes of hash160 of this key's public key,
// the value its children carry as their parent fingerprint.
func (k *ExtendedKey) Fingerprint() uint32 {
	return deserializeUint32(k.prov.Hash160(k.pubKeyBytes())[:4])
}

// pubKeyBytes 返回压缩公钥；私钥时实时计算，不做拷贝
func (k *ExtendedKey) pubKeyBytes() []byte {
	if !k.isPrivate {
		return k.key
	}

	pub, err := k.prov.PublicKeyFromSecret(k.key)
	if err != nil {
		// The constructor accepted the secret, so the provider
		// rejecting it now is an internal inconsistency.
		defect(DefectInvariant, err)
	}
	return pub
}

// Equal reports whether both keys carry the same fields. The provider is not
// compared.
func (k *ExtendedKey) Equal(o *ExtendedKey) bool {
	if k == nil || o == nil {
		return k == o
	}
	return k.net == o.net &&
		k.isPrivate == o.isPrivate &&
		bytes.Equal(k.key, o.key) &&
		k.chainCode == o.chainCode &&
		k.parentFP == o.parentFP &&
		k.depth == o.depth &&
		k.childIndex == o.childIndex
}
