package key

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/shnpd/hdwallet/ecc"
	"github.com/shnpd/hdwallet/netparams"
	"github.com/stretchr/testify/require"
)

// The master seeds of the BIP32 test vectors.
const (
	testVec1Seed = "000102030405060708090a0b0c0d0e0f"
	testVec2Seed = "fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeaba8a5a29f9c999693908d8a8784817e7b7875726f6c696663605d5a5754514e4b484542"
	testVec3Seed = "4b381541583be4423346c643850da4b320e46a87ae3d2a4e6da11eba819cd4acba45d239319ac14f863b8d5ab5a0d0c64d2e8a1e7d1457df2e5a3c51c73235be"
)

type bip32Vector struct {
	name     string
	seed     string
	path     string
	net      netparams.Network
	wantPub  string
	wantPriv string
}

// bip32Vectors holds the published BIP32 test vectors 1 to 3 plus vector 1
// with testnet version tags.
var bip32Vectors = []bip32Vector{
	{
		name:     "test vector 1 chain m",
		seed:     testVec1Seed,
		path:     "m",
		net:      netparams.MainNet,
		wantPub:  "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
		wantPriv: "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi",
	},
	{
		name:     "test vector 1 chain m/0'",
		seed:     testVec1Seed,
		path:     "m/0'",
		net:      netparams.MainNet,
		wantPub:  "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw",
		wantPriv: "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7",
	},
	{
		name:     "test vector 1 chain m/0'/1",
		seed:     testVec1Seed,
		path:     "m/0'/1",
		net:      netparams.MainNet,
		wantPub:  "xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ",
		wantPriv: "xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs",
	},
	{
		name:     "test vector 1 chain m/0'/1/2'",
		seed:     testVec1Seed,
		path:     "m/0'/1/2'",
		net:      netparams.MainNet,
		wantPub:  "xpub6D4BDPcP2GT577Vvch3R8wDkScZWzQzMMUm3PWbmWvVJrZwQY4VUNgqFJPMM3No2dFDFGTsxxpG5uJh7n7epu4trkrX7x7DogT5Uv6fcLW5",
		wantPriv: "xprv9z4pot5VBttmtdRTWfWQmoH1taj2axGVzFqSb8C9xaxKymcFzXBDptWmT7FwuEzG3ryjH4ktypQSAewRiNMjANTtpgP4mLTj34bhnZX7UiM",
	},
	{
		name:     "test vector 1 chain m/0'/1/2'/2",
		seed:     testVec1Seed,
		path:     "m/0'/1/2'/2",
		net:      netparams.MainNet,
		wantPub:  "xpub6FHa3pjLCk84BayeJxFW2SP4XRrFd1JYnxeLeU8EqN3vDfZmbqBqaGJAyiLjTAwm6ZLRQUMv1ZACTj37sR62cfN7fe5JnJ7dh8zL4fiyLHV",
		wantPriv: "xprvA2JDeKCSNNZky6uBCviVfJSKyQ1mDYahRjijr5idH2WwLsEd4Hsb2Tyh8RfQMuPh7f7RtyzTtdrbdqqsunu5Mm3wDvUAKRHSC34sJ7in334",
	},
	{
		name:     "test vector 1 chain m/0'/1/2'/2/1000000000",
		seed:     testVec1Seed,
		path:     "m/0'/1/2'/2/1000000000",
		net:      netparams.MainNet,
		wantPub:  "xpub6H1LXWLaKsWFhvm6RVpEL9P4KfRZSW7abD2ttkWP3SSQvnyA8FSVqNTEcYFgJS2UaFcxupHiYkro49S8yGasTvXEYBVPamhGW6cFJodrTHy",
		wantPriv: "xprvA41z7zogVVwxVSgdKUHDy1SKmdb533PjDz7J6N6mV6uS3ze1ai8FHa8kmHScGpWmj4WggLyQjgPie1rFSruoUihUZREPSL39UNdE3BBDu76",
	},
	{
		name:     "test vector 2 chain m",
		seed:     testVec2Seed,
		path:     "m",
		net:      netparams.MainNet,
		wantPub:  "xpub661MyMwAqRbcFW31YEwpkMuc5THy2PSt5bDMsktWQcFF8syAmRUapSCGu8ED9W6oDMSgv6Zz8idoc4a6mr8BDzTJY47LJhkJ8UB7WEGuduB",
		wantPriv: "xprv9s21ZrQH143K31xYSDQpPDxsXRTUcvj2iNHm5NUtrGiGG5e2DtALGdso3pGz6ssrdK4PFmM8NSpSBHNqPqm55Qn3LqFtT2emdEXVYsCzC2U",
	},
	{
		name:     "test vector 2 chain m/0",
		seed:     testVec2Seed,
		path:     "m/0",
		net:      netparams.MainNet,
		wantPub:  "xpub69H7F5d8KSRgmmdJg2KhpAK8SR3DjMwAdkxj3ZuxV27CprR9LgpeyGmXUbC6wb7ERfvrnKZjXoUmmDznezpbZb7ap6r1D3tgFxHmwMkQTPH",
		wantPriv: "xprv9vHkqa6EV4sPZHYqZznhT2NPtPCjKuDKGY38FBWLvgaDx45zo9WQRUT3dKYnjwih2yJD9mkrocEZXo1ex8G81dwSM1fwqWpWkeS3v86pgKt",
	},
	{
		name:     "test vector 2 chain m/0/2147483647'",
		seed:     testVec2Seed,
		path:     "m/0/2147483647'",
		net:      netparams.MainNet,
		wantPub:  "xpub6ASAVgeehLbnwdqV6UKMHVzgqAG8Gr6riv3Fxxpj8ksbH9ebxaEyBLZ85ySDhKiLDBrQSARLq1uNRts8RuJiHjaDMBU4Zn9h8LZNnBC5y4a",
		wantPriv: "xprv9wSp6B7kry3Vj9m1zSnLvN3xH8RdsPP1Mh7fAaR7aRLcQMKTR2vidYEeEg2mUCTAwCd6vnxVrcjfy2kRgVsFawNzmjuHc2YmYRmagcEPdU9",
	},
	{
		name:     "test vector 2 chain m/0/2147483647'/1",
		seed:     testVec2Seed,
		path:     "m/0/2147483647'/1",
		net:      netparams.MainNet,
		wantPub:  "xpub6DF8uhdarytz3FWdA8TvFSvvAh8dP3283MY7p2V4SeE2wyWmG5mg5EwVvmdMVCQcoNJxGoWaU9DCWh89LojfZ537wTfunKau47EL2dhHKon",
		wantPriv: "xprv9zFnWC6h2cLgpmSA46vutJzBcfJ8yaJGg8cX1e5StJh45BBciYTRXSd25UEPVuesF9yog62tGAQtHjXajPPdbRCHuWS6T8XA2ECKADdw4Ef",
	},
	{
		name:     "test vector 2 chain m/0/2147483647'/1/2147483646'",
		seed:     testVec2Seed,
		path:     "m/0/2147483647'/1/2147483646'",
		net:      netparams.MainNet,
		wantPub:  "xpub6ERApfZwUNrhLCkDtcHTcxd75RbzS1ed54G1LkBUHQVHQKqhMkhgbmJbZRkrgZw4koxb5JaHWkY4ALHY2grBGRjaDMzQLcgJvLJuZZvRcEL",
		wantPriv: "xprvA1RpRA33e1JQ7ifknakTFpgNXPmW2YvmhqLQYMmrj4xJXXWYpDPS3xz7iAxn8L39njGVyuoseXzU6rcxFLJ8HFsTjSyQbLYnMpCqE2VbFWc",
	},
	{
		name:     "test vector 2 chain m/0/2147483647'/1/2147483646'/2",
		seed:     testVec2Seed,
		path:     "m/0/2147483647'/1/2147483646'/2",
		net:      netparams.MainNet,
		wantPub:  "xpub6FnCn6nSzZAw5Tw7cgR9bi15UV96gLZhjDstkXXxvCLsUXBGXPdSnLFbdpq8p9HmGsApME5hQTZ3emM2rnY5agb9rXpVGyy3bdW6EEgAtqt",
		wantPriv: "xprvA2nrNbFZABcdryreWet9Ea4LvTJcGsqrMzxHx98MMrotbir7yrKCEXw7nadnHM8Dq38EGfSh6dqA9QWTyefMLEcBYJUuekgW4BYPJcr9E7j",
	},
	{
		name:     "test vector 3 chain m",
		seed:     testVec3Seed,
		path:     "m",
		net:      netparams.MainNet,
		wantPub:  "xpub661MyMwAqRbcEZVB4dScxMAdx6d4nFc9nvyvH3v4gJL378CSRZiYmhRoP7mBy6gSPSCYk6SzXPTf3ND1cZAceL7SfJ1Z3GC8vBgp2epUt13",
		wantPriv: "xprv9s21ZrQH143K25QhxbucbDDuQ4naNntJRi4KUfWT7xo4EKsHt2QJDu7KXp1A3u7Bi1j8ph3EGsZ9Xvz9dGuVrtHHs7pXeTzjuxBrCmmhgC6",
	},
	{
		name:     "test vector 3 chain m/0'",
		seed:     testVec3Seed,
		path:     "m/0'",
		net:      netparams.MainNet,
		wantPub:  "xpub68NZiKmJWnxxS6aaHmn81bvJeTESw724CRDs6HbuccFQN9Ku14VQrADWgqbhhTHBaohPX4CjNLf9fq9MYo6oDaPPLPxSb7gwQN3ih19Zm4Y",
		wantPriv: "xprv9uPDJpEQgRQfDcW7BkF7eTya6RPxXeJCqCJGHuCJ4GiRVLzkTXBAJMu2qaMWPrS7AANYqdq6vcBcBUdJCVVFceUvJFjaPdGZ2y9WACViL4L",
	},
	{
		name:     "test vector 1 chain m - testnet",
		seed:     testVec1Seed,
		path:     "m",
		net:      netparams.TestNet,
		wantPub:  "tpubD6NzVbkrYhZ4XgiXtGrdW5XDAPFCL9h7we1vwNCpn8tGbBcgfVYjXyhWo4E1xkh56hjod1RhGjxbaTLV3X4FyWuejifB9jusQ46QzG87VKp",
		wantPriv: "tprv8ZgxMBicQKsPeDgjzdC36fs6bMjGApWDNLR9erAXMs5skhMv36j9MV5ecvfavji5khqjWaWSFhN3YcCUUdiKH6isR4Pwy3U5y5egddBr16m",
	},
	{
		name:     "test vector 1 chain m/0' - testnet",
		seed:     testVec1Seed,
		path:     "m/0'",
		net:      netparams.TestNet,
		wantPub:  "tpubD8eQVK4Kdxg3gHrF62jGP7dKVCoYiEB8dFSpuTawkL5YxTus5j5pf83vaKnii4bc6v2NVEy81P2gYrJczYne3QNNwMTS53p5uzDyHvnw2jm",
		wantPriv: "tprv8bxNLu25VazNnppTCP4fyhyCvBHcYtzE3wr3cwYeL4HA7yf6TLGEUdS4QC1vLT63TkjRssqJe4CvGNEC8DzW5AoPUw56D1Ayg6HY4oy8QZ9",
	},
	{
		name:     "test vector 1 chain m/0'/1 - testnet",
		seed:     testVec1Seed,
		path:     "m/0'/1",
		net:      netparams.TestNet,
		wantPub:  "tpubDApXh6cD2fZ7WjtgpHd8yrWyYaneiFuRZa7fVjMkgxsmC1QzoXW8cgx9zQFJ81Jx4deRGfRE7yXA9A3STsxXj4CKEZJHYgpMYikkas9DBTP",
		wantPriv: "tprv8e8VYgZxtHsSdGrtvdxYaSrryZGiYviWzGWtDDKTGh5NMXAEB8gYSCLHpFCywNs5uqV7ghRjimALQJkRFZnUrLHpzi2pGkwqLtbubgWuQ8q",
	},
	{
		name:     "test vector 1 chain m/0'/1/2' - testnet",
		seed:     testVec1Seed,
		path:     "m/0'/1/2'",
		net:      netparams.TestNet,
		wantPub:  "tpubDDRojdS4jYQXNugn4t2WLrZ7mjfAyoVQu7MLk4eurqFCbrc7cHLZX8W5YRS8ZskGR9k9t3PqVv68bVBjAyW4nWM9pTGRddt3GQftg6MVQsm",
		wantPriv: "tprv8gjmbDPpbAirVSezBEMuwSu1Ci9EpUJWKokZTYccSZSomNMLytWyLdtDNHRbucNaRJWWHANf9AzEdWVAqahfyRjVMKbNRhBmxAM8EJr7R15",
	},
	{
		name:     "test vector 1 chain m/0'/1/2'/2 - testnet",
		seed:     testVec1Seed,
		path:     "m/0'/1/2'/2",
		net:      netparams.TestNet,
		wantPub:  "tpubDFfCa4Z1v25WTPAVm9EbEMiRrYwucPocLbEe12BPBGooxxEUg42vihy1DkRWyftztTsL23snYezF9uXjGGwGW6pQjEpcTpmsH6ajpf4CVPn",
		wantPriv: "tprv8iyAReWmmePqZv8hsVZzpx4KHXRyT4chmHdriW95m11R8Tyi3fDLYDM93bq4NGn1V6eCu5cE3zSQ6hPd31F2ApKXkZgTyn1V78pHjkq1V2v",
	},
	{
		name:     "test vector 1 chain m/0'/1/2'/2/1000000000 - testnet",
		seed:     testVec1Seed,
		path:     "m/0'/1/2'/2/1000000000",
		net:      netparams.TestNet,
		wantPub:  "tpubDHNy3kAG39ThyiwwsgoKY4iRenXDRtce8qdCFJZXPMCJg5dsCUHayp84raLTpvyiNA9sXPob5rgqkKvkN8S7MMyXbnEhGJMW64Cf4vFAoaF",
		wantPriv: "tprv8kgvuL81tmn36Fv9z38j8f4K5m1HGZRjZY2QxnXDy5PuqbP6a5TzoKWCgTcGHBu66W3TgSbAu2yX6sPza5FkHmy564Sh6gmCPUNeUt4yj2x",
	},
}

// testEngines returns an engine per provider flavour. Every vector must pass on
// all of them.
func testEngines(t *testing.T) map[string]*Engine {
	t.Helper()

	ctx := ecc.NewContext(
		ecc.NewBigCurve(), bytes.NewReader(bytes.Repeat([]byte{0x42}, 32)),
	)
	require.NoError(t, ctx.Randomize())
	t.Cleanup(ctx.Destroy)

	return map[string]*Engine{
		"default":       defaultEngine(),
		"bigcurve":      NewEngine(ecc.NewBigCurve()),
		"bigcurve-ctx":  NewEngine(ctx),
		"secp256k1-ctx": NewEngine(ecc.NewContext(ecc.NewSecp256k1(), nil)),
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestBIP0032Vectors derives every published vector from its seed and checks
// the private and public text forms, plus their round trip.
func TestBIP0032Vectors(t *testing.T) {
	for engineName, engine := range testEngines(t) {
		for _, test := range bip32Vectors {
			name := engineName + "/" + test.name
			t.Run(name, func(t *testing.T) {
				master, err := engine.NewMaster(
					mustHex(t, test.seed), test.net,
				)
				require.NoError(t, err)

				path, err := ParsePath(test.path)
				require.NoError(t, err)

				extKey, err := master.DerivePath(path)
				require.NoError(t, err)
				require.Equal(t, test.wantPriv, extKey.String())
				require.EqualValues(t, len(path), extKey.Depth())

				pubKey := extKey.Neuter()
				require.Equal(t, test.wantPub, pubKey.String())

				// Neutering a second time should have no effect.
				require.Same(t, pubKey, pubKey.Neuter())

				decoded, err := engine.Parse(test.wantPriv)
				require.NoError(t, err)
				require.True(t, decoded.Equal(extKey))

				decoded, err = engine.Parse(test.wantPub)
				require.NoError(t, err)
				require.True(t, decoded.Equal(pubKey))
			})
		}
	}
}

// TestVector1StepByStep walks m/0'/1/2'/2/1000000000 with Derive, checking
// each intermediate key against the published strings.
func TestVector1StepByStep(t *testing.T) {
	steps := []struct {
		index    uint32
		hardened bool
	}{
		{0, true}, {1, false}, {2, true}, {2, false}, {1000000000, false},
	}

	key, err := NewMaster(mustHex(t, testVec1Seed), netparams.MainNet)
	require.NoError(t, err)
	require.Equal(t, bip32Vectors[0].wantPriv, key.String())

	for i, step := range steps {
		parent := key
		key, err = key.Derive(step.index, step.hardened)
		require.NoError(t, err)

		want := bip32Vectors[i+1]
		require.Equal(t, want.wantPriv, key.String(), want.name)
		require.Equal(t, want.wantPub, key.Neuter().String(), want.name)
		require.Equal(t, parent.Depth()+1, key.Depth())
		require.Equal(t, parent.Fingerprint(), key.ParentFingerprint())
		require.Equal(t, step.hardened, key.IsHardened())
	}
}

// TestPublicDerivation checks that the unhardened children of a neutered key
// are the neutered unhardened children of the private key.
func TestPublicDerivation(t *testing.T) {
	for engineName, engine := range testEngines(t) {
		t.Run(engineName, func(t *testing.T) {
			master, err := engine.NewMaster(
				mustHex(t, testVec2Seed), netparams.MainNet,
			)
			require.NoError(t, err)

			priv, pub := master, master.Neuter()
			for _, i := range []uint32{0, 1, 2147483647, 5, 0} {
				priv, err = priv.Derive(i, false)
				require.NoError(t, err)

				pub, err = pub.Derive(i, false)
				require.NoError(t, err)

				require.True(t, priv.Neuter().Equal(pub))
				require.False(t, pub.IsPrivate())
			}
		})
	}
}

// TestVectorVersionTags checks every vector string carries the version tags
// of its network, so the table cannot drift to another chain's tags.
func TestVectorVersionTags(t *testing.T) {
	for _, test := range bip32Vectors {
		privVersion, ok := netparams.VersionFor(test.net, true)
		require.True(t, ok)
		pubVersion, ok := netparams.VersionFor(test.net, false)
		require.True(t, ok)

		priv, err := Parse(test.wantPriv)
		require.NoError(t, err, test.name)
		require.Equal(t, test.net, priv.Network(), test.name)
		require.True(t, priv.IsPrivate(), test.name)
		require.Equal(t, privVersion[:], priv.Serialize()[:4], test.name)

		pub, err := Parse(test.wantPub)
		require.NoError(t, err, test.name)
		require.Equal(t, test.net, pub.Network(), test.name)
		require.False(t, pub.IsPrivate(), test.name)
		require.Equal(t, pubVersion[:], pub.Serialize()[:4], test.name)
	}
}
