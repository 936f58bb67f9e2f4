// Package netparams maps extended key version tags to the network they belong
// to and back. The tags are taken from btcd's chaincfg parameters so they
// always agree with the rest of the btcd stack.
package netparams

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network identifies the chain parameter set an extended key belongs to.
type Network uint8

const (
	// MainNet is the bitcoin main network (xprv / xpub).
	MainNet Network = iota

	// TestNet is the bitcoin test network (tprv / tpub). Regression test
	// and signet share the same tags and therefore resolve to TestNet.
	TestNet

	// SimNet is the btcd simulation network (sprv / spub).
	SimNet
)

// String returns the canonical name of the network.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	case SimNet:
		return "simnet"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(n))
	}
}

// ParseNetwork 将网络名称解析为Network，接受"main"/"mainnet"等简写
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(s) {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet", "testnet3":
		return TestNet, nil
	case "sim", "simnet":
		return SimNet, nil
	default:
		return 0, fmt.Errorf("unknown network %q", s)
	}
}

// entry is one row of the version table.
type entry struct {
	net    Network
	params *chaincfg.Params
}

// table is ordered; Lookup returns the first row whose tags match.
var table = []entry{
	{MainNet, &chaincfg.MainNetParams},
	{TestNet, &chaincfg.TestNet3Params},
	{SimNet, &chaincfg.SimNetParams},
}

// ChainParams returns the btcd parameters backing the network, or nil if the
// network is unknown.
func ChainParams(net Network) *chaincfg.Params {
	for _, e := range table {
		if e.net == net {
			return e.params
		}
	}
	return nil
}

// Valid reports whether the network has an entry in the table.
func (n Network) Valid() bool {
	return ChainParams(n) != nil
}

// VersionFor returns the canonical 4-byte version tag for the network and
// key kind. ok is false for an unknown network.
func VersionFor(net Network, private bool) (version [4]byte, ok bool) {
	params := ChainParams(net)
	if params == nil {
		return version, false
	}
	if private {
		return params.HDPrivateKeyID, true
	}
	return params.HDPublicKeyID, true
}

// Lookup resolves a version tag to its network and whether it marks a
// private key.
func Lookup(version [4]byte) (net Network, private bool, ok bool) {
	for _, e := range table {
		switch version {
		case e.params.HDPrivateKeyID:
			return e.net, true, true
		case e.params.HDPublicKeyID:
			return e.net, false, true
		}
	}
	return 0, false, false
}

// Networks returns every network known to the table.
func Networks() []Network {
	nets := make([]Network, 0, len(table))
	for _, e := range table {
		nets = append(nets, e.net)
	}
	return nets
}
