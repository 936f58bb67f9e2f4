package key

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"
	"github.com/shnpd/hdwallet/netparams"
)

// WIF 将私钥转换为压缩公钥形式的WIF字符串，网络字节由扩展密钥所属网络决定
func (k *ExtendedKey) WIF() (string, error) {
	if !k.isPrivate {
		return "", ErrNotPrivate
	}

	params := netparams.ChainParams(k.net)
	if params == nil {
		return "", errors.Wrapf(ErrUnknownNetwork, "network %v", k.net)
	}

	priv, _ := btcec.PrivKeyFromBytes(k.key)
	defer priv.Zero()

	wif, err := btcutil.NewWIF(priv, params, true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

