package key

import (
	"fmt"

	"github.com/pkg/errors"
)

// Derive 派生第childIndex个子密钥，hardened为真时进行强化派生
//
// childIndex must be below HardenedKeyStart; the hardened flag, not the
// index, selects hardened derivation. Violating that, or asking a public key
// for a hardened child, is a programming error and panics with a
// *DefectError. The only error returned is ErrMaxDepthExceeded.
//
// Unhardened children of a private key and of its neutered counterpart have
// the same public key.
func (k *ExtendedKey) Derive(childIndex uint32, hardened bool) (*ExtendedKey,
	error) {

	if childIndex >= HardenedKeyStart {
		defect(DefectIndexOutOfRange, fmt.Errorf("index %d", childIndex))
	}

	index := childIndex
	if hardened {
		index += HardenedKeyStart
	}
	return k.Child(index)
}

// Child derives the child at the raw index i; indices from HardenedKeyStart
// on select hardened derivation.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	isHardened := i >= HardenedKeyStart
	if isHardened && !k.isPrivate {
		defect(DefectHardenedFromPublic, fmt.Errorf("index %d", i))
	}
	if k.depth == MaxDepth {
		return nil, errors.Wrapf(ErrMaxDepthExceeded, "cannot derive "+
			"index %d from depth %d", i, k.depth)
	}

	parentPub := k.pubKeyBytes()

	// data = 0x00 || ser256(k) || ser32(i)  (hardened)
	// data = serP(K) || ser32(i)            (normal)
	data := make([]byte, 0, 1+len(parentPub)+4)
	if isHardened {
		data = append(data, privKeyPad)
		data = append(data, k.key...)
	} else {
		data = append(data, parentPub...)
	}
	data = append(data, serializeUint32(i)...)

	ilr := k.prov.HmacSha512(k.chainCode[:], data)
	il, childChainCode := ilr[:len(ilr)/2], ilr[len(ilr)/2:]

	var (
		childKey []byte
		err      error
	)
	if k.isPrivate {
		childKey, err = k.prov.TweakSecret(k.key, il)
	} else {
		childKey, err = k.prov.TweakPublic(k.key, il)
	}
	if err != nil {
		defect(DefectInvalidTweak, errors.Wrapf(err, "index %d", i))
	}

	parentFP := deserializeUint32(k.prov.Hash160(parentPub)[:4])

	child, err := (&Engine{prov: k.prov}).NewExtendedKey(
		k.net, k.isPrivate, childKey, childChainCode, parentFP,
		k.depth+1, i,
	)
	if err != nil {
		defect(DefectInvariant, err)
	}

	log.Tracef("Derived child %v at depth %d from parent %08x",
		newLogClosure(func() string {
			return PathComponentString(i)
		}), child.depth, parentFP)

	return child, nil
}

// Neuter 返回对应的公钥扩展密钥，链码、指纹、深度及索引不变
//
// Neutering a public key returns the receiver itself.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.isPrivate {
		return k
	}

	return &ExtendedKey{
		net:        k.net,
		isPrivate:  false,
		key:        k.pubKeyBytes(),
		chainCode:  k.chainCode,
		parentFP:   k.parentFP,
		depth:      k.depth,
		childIndex: k.childIndex,
		prov:       k.prov,
	}
}
