package ecc

import (
	"bytes"
	"math/big"

	"github.com/mndrix/btcutil"
	"github.com/shnpd/hdwallet/crypto"
)

var (
	// 定义曲线
	curve = btcutil.Secp256k1()
	// 定义曲线参数
	curveParams = curve.Params()

	// sqrtExp is (p+1)/4; p ≡ 3 mod 4 so beta^sqrtExp is a square root.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(curveParams.P, big.NewInt(1)), 2)

	bigSeven = big.NewInt(7)
)

// BigCurve 基于math/big仿射坐标运算的Provider实现
//
// The zero value is ready to use. SetBlinding must not be called while other
// goroutines use the value; Context takes care of that.
type BigCurve struct {
	// blind and its negated multiple of G mask ScalarBaseMult:
	// kG = (k+r)G - rG.
	blind      *big.Int
	blindNegGx *big.Int
	blindNegGy *big.Int
}

// NewBigCurve returns an unblinded math/big provider.
func NewBigCurve() *BigCurve {
	return &BigCurve{}
}

// A compile time check to ensure BigCurve implements Provider and Blinder.
var (
	_ Provider = (*BigCurve)(nil)
	_ Blinder  = (*BigCurve)(nil)
)

// SetBlinding installs seed mod n as the blinding scalar. A seed that reduces
// to zero disables blinding.
func (c *BigCurve) SetBlinding(seed []byte) {
	r := new(big.Int).SetBytes(seed)
	r.Mod(r, curveParams.N)
	if r.Sign() == 0 {
		c.blind, c.blindNegGx, c.blindNegGy = nil, nil, nil
		return
	}

	x, y := curve.ScalarBaseMult(paddedBytes(r))
	c.blind = r
	c.blindNegGx = x
	c.blindNegGy = new(big.Int).Sub(curveParams.P, y)
}

// paddedBytes 将整数序列化为32字节大端序
func paddedBytes(i *big.Int) []byte {
	b := make([]byte, SecretKeyLen)
	return i.FillBytes(b)
}

// point 返回基点与整数k进行点乘得到的坐标对
func (c *BigCurve) point(k []byte) (*big.Int, *big.Int) {
	if c.blind == nil {
		return curve.ScalarBaseMult(k)
	}

	kb := new(big.Int).SetBytes(k)
	kb.Add(kb, c.blind)
	kb.Mod(kb, curveParams.N)
	if kb.Sign() == 0 {
		return curve.ScalarBaseMult(k)
	}

	x, y := curve.ScalarBaseMult(paddedBytes(kb))
	return c.add(x, y, c.blindNegGx, c.blindNegGy)
}

// add 仿射点相加，处理相等和互为相反数的情况，无穷远点以(0,0)表示
func (c *BigCurve) add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	if x1.Cmp(x2) == 0 {
		if y1.Cmp(y2) == 0 {
			return curve.Double(x1, y1)
		}
		return new(big.Int), new(big.Int)
	}
	return curve.Add(x1, y1, x2, y2)
}

// serializePub 将坐标对P = (x,y)序列化为SEC1压缩形式:(0x02或0x03) || ser256(x)
func serializePub(x *big.Int, y *big.Int) []byte {
	var key bytes.Buffer
	key.Grow(PubKeyLen)

	// Write header; 0x2 for even y value; 0x3 for odd
	key.WriteByte(pubKeyEven + byte(y.Bit(0)))
	key.Write(paddedBytes(x))

	return key.Bytes()
}

// deserializePub 将压缩公钥解压为坐标对，x不在曲线上时返回错误
func deserializePub(key []byte) (*big.Int, *big.Int, error) {
	if !isCompressedEncoding(key) {
		return nil, nil, ErrInvalidPoint
	}

	x := new(big.Int).SetBytes(key[1:])
	if x.Cmp(curveParams.P) >= 0 {
		return nil, nil, ErrInvalidPoint
	}

	// y^2 = x^3 + 7
	rhs := new(big.Int).Exp(x, big.NewInt(3), curveParams.P)
	rhs.Add(rhs, bigSeven)
	rhs.Mod(rhs, curveParams.P)

	beta := new(big.Int).Exp(rhs, sqrtExp, curveParams.P)
	check := new(big.Int).Exp(beta, big.NewInt(2), curveParams.P)
	if check.Cmp(rhs) != 0 {
		return nil, nil, ErrInvalidPoint
	}

	y := beta
	if beta.Bit(0) != uint(key[0]&1) {
		y = new(big.Int).Sub(curveParams.P, beta)
	}
	return x, y, nil
}

// Hash160 implements Provider.
func (c *BigCurve) Hash160(data []byte) []byte {
	return crypto.Hash160(data)
}

// HmacSha512 implements Provider.
func (c *BigCurve) HmacSha512(key, data []byte) []byte {
	return crypto.HmacSha512(key, data)
}

// PublicKeyFromSecret implements Provider.
func (c *BigCurve) PublicKeyFromSecret(secret []byte) ([]byte, error) {
	if !c.IsValidSecret(secret) {
		return nil, ErrInvalidSecret
	}
	return serializePub(c.point(secret)), nil
}

// TweakSecret 私钥相加：(secret + tweak) mod n
func (c *BigCurve) TweakSecret(secret, tweak []byte) ([]byte, error) {
	if !c.IsValidSecret(secret) {
		return nil, ErrInvalidSecret
	}
	t, err := parseTweak(tweak)
	if err != nil {
		return nil, err
	}

	var sum big.Int
	sum.SetBytes(secret)
	sum.Add(&sum, t)
	sum.Mod(&sum, curveParams.N)
	if sum.Sign() == 0 {
		return nil, ErrTweakResultInvalid
	}
	return paddedBytes(&sum), nil
}

// TweakPublic 公钥相加：先解压为坐标对，与tweak*G相加后再序列化
func (c *BigCurve) TweakPublic(point, tweak []byte) ([]byte, error) {
	x1, y1, err := deserializePub(point)
	if err != nil {
		return nil, err
	}
	t, err := parseTweak(tweak)
	if err != nil {
		return nil, err
	}

	// A zero tweak adds the point at infinity.
	if t.Sign() == 0 {
		return serializePub(x1, y1), nil
	}

	x2, y2 := c.point(tweak)
	x, y := c.add(x1, y1, x2, y2)
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, ErrTweakResultInvalid
	}
	return serializePub(x, y), nil
}

func parseTweak(tweak []byte) (*big.Int, error) {
	if len(tweak) != TweakLen {
		return nil, ErrTweakOutOfRange
	}
	t := new(big.Int).SetBytes(tweak)
	if t.Cmp(curveParams.N) >= 0 {
		return nil, ErrTweakOutOfRange
	}
	return t, nil
}

// IsValidSecret 验证私钥是否合法：长度32，非零且小于n
func (c *BigCurve) IsValidSecret(b []byte) bool {
	if len(b) != SecretKeyLen {
		return false
	}
	k := new(big.Int).SetBytes(b)
	return k.Sign() != 0 && k.Cmp(curveParams.N) < 0
}

// IsValidPublicEncoding implements Provider.
func (c *BigCurve) IsValidPublicEncoding(b []byte) bool {
	return isCompressedEncoding(b)
}

// IsValidPublicPoint implements Provider.
func (c *BigCurve) IsValidPublicPoint(b []byte) bool {
	_, _, err := deserializePub(b)
	return err == nil
}
