package key

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/shnpd/hdwallet/base58check"
	"github.com/shnpd/hdwallet/netparams"
)

// Serialized layout, all multi-byte integers big-endian:
//
//	version(4) || depth(1) || fingerprint(4) || index(4) || chaincode(32) || key(33)
const (
	versionOffset     = 0
	depthOffset       = 4
	fingerprintOffset = 5
	childIndexOffset  = 9
	chainCodeOffset   = 13
	keyDataOffset     = 45

	// SerializedKeyLen 序列化后扩展密钥的长度
	SerializedKeyLen = 78

	// privKeyPad precedes the 32 byte secret in the key field.
	privKeyPad = 0x00
)

// serializeUint32 将32位无符号整数i序列化为4字节序列，最高有效字节优先
func serializeUint32(i uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, i)
	return buf
}

// deserializeUint32 读取4字节大端序整数
func deserializeUint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// Serialize 按BIP32格式序列化为78字节
func (k *ExtendedKey) Serialize() []byte {
	version, ok := netparams.VersionFor(k.net, k.isPrivate)
	if !ok {
		defect(DefectInvariant, errors.Wrapf(ErrUnknownNetwork,
			"network %v", k.net))
	}

	buf := make([]byte, SerializedKeyLen)
	copy(buf[versionOffset:], version[:])
	buf[depthOffset] = k.depth
	binary.BigEndian.PutUint32(buf[fingerprintOffset:], k.parentFP)
	binary.BigEndian.PutUint32(buf[childIndexOffset:], k.childIndex)
	copy(buf[chainCodeOffset:], k.chainCode[:])

	// Private keys should be prepended with a single null byte
	if k.isPrivate {
		buf[keyDataOffset] = privKeyPad
		copy(buf[keyDataOffset+1:], k.key)
	} else {
		copy(buf[keyDataOffset:], k.key)
	}
	return buf
}

// String returns the base58check text form, e.g. "xprv9s21Z...".
func (k *ExtendedKey) String() string {
	return base58check.Encode(k.Serialize())
}

// Decode parses a 78 byte serialized extended key.
func (e *Engine) Decode(body []byte) (*ExtendedKey, error) {
	k, err := e.decode(body)
	if err != nil {
		log.Debugf("Rejected serialized extended key: %v", err)
		return nil, err
	}
	return k, nil
}

func (e *Engine) decode(body []byte) (*ExtendedKey, error) {
	if len(body) != SerializedKeyLen {
		return nil, errors.Wrapf(ErrWrongDataLength, "got %d bytes, "+
			"want %d", len(body), SerializedKeyLen)
	}

	var version [4]byte
	copy(version[:], body[versionOffset:depthOffset])
	net, isPrivate, ok := netparams.Lookup(version)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "version %x",
			version)
	}

	depth := body[depthOffset]
	parentFP := deserializeUint32(body[fingerprintOffset:childIndexOffset])
	childIndex := deserializeUint32(body[childIndexOffset:chainCodeOffset])
	chainCode := body[chainCodeOffset:keyDataOffset]
	keyData := body[keyDataOffset:]

	if isPrivate {
		if keyData[0] != privKeyPad {
			return nil, errors.Wrapf(ErrInvalidPrivateKeyLength,
				"pad byte %#02x", keyData[0])
		}
		keyData = keyData[1:]
	}

	return e.NewExtendedKey(
		net, isPrivate, keyData, chainCode, parentFP, depth, childIndex,
	)
}

// Parse decodes the base58check text form of an extended key.
func (e *Engine) Parse(s string) (*ExtendedKey, error) {
	body, err := base58check.Decode(s)
	if err != nil {
		log.Debugf("Rejected extended key string: %v", err)
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	return e.Decode(body)
}

// Decode parses a 78 byte serialized extended key on the process wide ecc
// context.
func Decode(body []byte) (*ExtendedKey, error) {
	return defaultEngine().Decode(body)
}

// Parse decodes the text form of an extended key on the process wide ecc
// context.
func Parse(s string) (*ExtendedKey, error) {
	return defaultEngine().Parse(s)
}
