// Package outpoint 交易输出引用：txid与输出索引
//
// An OutPoint serializes to 36 bytes: the transaction hash in internal byte
// order followed by the output index, little-endian.
package outpoint

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
)

// SerializedLen is the size of an encoded outpoint.
const SerializedLen = chainhash.HashSize + 4

var (
	// ErrWrongLength is returned when decoding a buffer that is not
	// SerializedLen bytes.
	ErrWrongLength = errors.New("outpoint: wrong length")

	// ErrInvalidFormat is returned when parsing a malformed "txid:index"
	// string.
	ErrInvalidFormat = errors.New("outpoint: invalid format")
)

// OutPoint 引用某笔交易的第Index个输出
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// New builds an outpoint from a transaction hash and output index.
func New(hash *chainhash.Hash, index uint32) OutPoint {
	return OutPoint{Hash: *hash, Index: index}
}

// Serialize 序列化为36字节
func (o OutPoint) Serialize() []byte {
	buf := make([]byte, SerializedLen)
	copy(buf, o.Hash[:])
	binary.LittleEndian.PutUint32(buf[chainhash.HashSize:], o.Index)
	return buf
}

// Deserialize decodes the 36 byte form produced by Serialize.
func Deserialize(b []byte) (OutPoint, error) {
	if len(b) != SerializedLen {
		return OutPoint{}, errors.Wrapf(ErrWrongLength, "got %d bytes",
			len(b))
	}

	var o OutPoint
	copy(o.Hash[:], b[:chainhash.HashSize])
	o.Index = binary.LittleEndian.Uint32(b[chainhash.HashSize:])
	return o, nil
}

// String 返回"txid:index"，txid按区块浏览器的显示顺序（字节反转）
func (o OutPoint) String() string {
	return o.Hash.String() + ":" + strconv.FormatUint(uint64(o.Index), 10)
}

// Parse reads the "txid:index" form printed by String.
func Parse(s string) (OutPoint, error) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return OutPoint{}, errors.Wrapf(ErrInvalidFormat, "missing "+
			"index in %q", s)
	}

	txid, indexStr := s[:i], s[i+1:]
	if len(txid) != chainhash.MaxHashStringSize {
		return OutPoint{}, errors.Wrapf(ErrInvalidFormat, "txid %q "+
			"is not %d hex characters", txid,
			chainhash.MaxHashStringSize)
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return OutPoint{}, errors.Wrap(ErrInvalidFormat, err.Error())
	}

	index, err := strconv.ParseUint(indexStr, 10, 32)
	if err != nil {
		return OutPoint{}, errors.Wrapf(ErrInvalidFormat, "index %q",
			indexStr)
	}

	return New(hash, uint32(index)), nil
}

// FromWire converts a btcd wire outpoint.
func FromWire(op *wire.OutPoint) OutPoint {
	return OutPoint{Hash: op.Hash, Index: op.Index}
}

// ToWire converts to a btcd wire outpoint, e.g. for a transaction input.
func (o OutPoint) ToWire() *wire.OutPoint {
	return wire.NewOutPoint(&o.Hash, o.Index)
}

