package key

import (
	"github.com/pkg/errors"
	"github.com/shnpd/hdwallet/crypto"
	"github.com/shnpd/hdwallet/netparams"
)

// masterKey is the HMAC key used to stretch a seed into the master key.
var masterKey = []byte("Bitcoin seed")

// NewMaster 基于密钥种子生成主密钥
//
// The seed must be between 16 and 64 bytes. ErrUnusableSeed is returned in
// the rare case the seed yields an invalid master key.
func (e *Engine) NewMaster(seed []byte, net netparams.Network) (*ExtendedKey,
	error) {

	if len(seed) < crypto.MinSeedBytes || len(seed) > crypto.MaxSeedBytes {
		return nil, errors.Wrapf(ErrInvalidSeedLen, "seed is %d bytes",
			len(seed))
	}

	I := e.prov.HmacSha512(masterKey, seed)
	secret, chainCode := I[:len(I)/2], I[len(I)/2:]

	if !e.prov.IsValidSecret(secret) {
		return nil, ErrUnusableSeed
	}

	return e.NewExtendedKey(net, true, secret, chainCode, 0, 0, 0)
}

// NewMaster creates a master key on the process wide ecc context.
func NewMaster(seed []byte, net netparams.Network) (*ExtendedKey, error) {
	return defaultEngine().NewMaster(seed, net)
}
