// Package base58check 带校验和的Base58编解码：body || sha256d(body)[:4]
package base58check

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// ChecksumLen 校验和长度
const ChecksumLen = 4

var (
	// ErrInvalidFormat is returned when the string is not valid base58 or
	// is too short to carry a checksum.
	ErrInvalidFormat = errors.New("invalid base58 format")

	// ErrChecksum is returned when the trailing checksum does not match
	// the payload.
	ErrChecksum = errors.New("checksum mismatch")
)

// checksum 计算sha256d(data)的前4字节
func checksum(data []byte) []byte {
	return chainhash.DoubleHashB(data)[:ChecksumLen]
}

// Encode 追加校验和后进行Base58编码
func Encode(body []byte) string {
	buf := make([]byte, 0, len(body)+ChecksumLen)
	buf = append(buf, body...)
	buf = append(buf, checksum(body)...)
	return base58.Encode(buf)
}

// Decode 解码并校验，返回去掉校验和的body
func Decode(s string) ([]byte, error) {
	// base58.Decode returns an empty slice for any character outside the
	// alphabet.
	decoded := base58.Decode(s)
	if len(decoded) < ChecksumLen {
		return nil, ErrInvalidFormat
	}

	body := decoded[:len(decoded)-ChecksumLen]
	if !bytes.Equal(checksum(body), decoded[len(decoded)-ChecksumLen:]) {
		return nil, ErrChecksum
	}
	return body, nil
}
