// Package crypto 哈希与随机数相关操作
package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

const (
	// RecommendedSeedLen 推荐的种子长度（字节）
	RecommendedSeedLen = 32

	// MinSeedBytes BIP32允许的最短种子
	MinSeedBytes = 16

	// MaxSeedBytes BIP32允许的最长种子
	MaxSeedBytes = 64
)

// ErrInvalidSeedLen is returned when a seed length outside
// [MinSeedBytes, MaxSeedBytes] is requested.
var ErrInvalidSeedLen = errors.New("invalid seed length")

// HashSha256 计算单次sha256
func HashSha256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HashRipeMD160 计算ripemd160
func HashRipeMD160(data []byte) []byte {
	hasher := ripemd160.New()
	// hash.Hash never returns an error on Write.
	_, _ = hasher.Write(data)
	return hasher.Sum(nil)
}

// Hash160 ripemd160(sha256(data))，用于计算公钥指纹
func Hash160(data []byte) []byte {
	return HashRipeMD160(HashSha256(data))
}

// HmacSha512 以key为密钥计算data的HMAC-SHA512，输出64字节
func HmacSha512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	_, _ = mac.Write(data)
	return mac.Sum(nil)
}

// ReadSeed 从给定随机源读取n字节种子
func ReadSeed(r io.Reader, n int) ([]byte, error) {
	if n < MinSeedBytes || n > MaxSeedBytes {
		return nil, errors.Wrapf(ErrInvalidSeedLen, "seed length must "+
			"be between %d and %d bytes, got %d", MinSeedBytes,
			MaxSeedBytes, n)
	}

	seed := make([]byte, n)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, errors.Wrap(err, "unable to read seed")
	}
	return seed, nil
}

// NewSeed 使用系统安全随机源生成推荐长度的种子
func NewSeed() ([]byte, error) {
	return ReadSeed(rand.Reader, RecommendedSeedLen)
}
