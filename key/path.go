package key

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Path is a derivation path as raw child indices, hardened bit included.
type Path []uint32

// ParsePath 解析形如"m/0'/1/2h"的派生路径
//
// The path must start with "m" (or "M"). Hardened components are marked with
// a trailing ', h or H. Every index must be below 2^31 and written without
// leading zeros.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if parts[0] != "m" && parts[0] != "M" {
		return nil, errors.Wrapf(ErrInvalidPath, "%q must start with m",
			s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := false
		switch {
		case strings.HasSuffix(part, "'"), strings.HasSuffix(part, "h"),
			strings.HasSuffix(part, "H"):

			hardened = true
			part = part[:len(part)-1]
		}

		// ParseUint accepts neither signs nor empty strings. Leading
		// zeros are rejected so String reproduces the input.
		i, err := strconv.ParseUint(part, 10, 32)
		if err != nil || uint32(i) >= HardenedKeyStart ||
			(len(part) > 1 && part[0] == '0') {
			return nil, errors.Wrapf(ErrInvalidPath, "bad component "+
				"%q in %q", part, s)
		}

		index := uint32(i)
		if hardened {
			index += HardenedKeyStart
		}
		path = append(path, index)
	}
	return path, nil
}

// PathComponentString formats one raw index, e.g. "44'" or "0".
func PathComponentString(i uint32) string {
	if i >= HardenedKeyStart {
		return strconv.FormatUint(uint64(i-HardenedKeyStart), 10) + "'"
	}
	return strconv.FormatUint(uint64(i), 10)
}

// String formats the path with a leading "m".
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, i := range p {
		b.WriteString("/")
		b.WriteString(PathComponentString(i))
	}
	return b.String()
}

// HasHardened reports whether any component is hardened.
func (p Path) HasHardened() bool {
	for _, i := range p {
		if i >= HardenedKeyStart {
			return true
		}
	}
	return false
}

// DerivePath walks every component of path starting at k. The same defect
// rules as Child apply, so callers holding a public key should check
// HasHardened first.
func (k *ExtendedKey) DerivePath(path Path) (*ExtendedKey, error) {
	cur := k
	for _, i := range path {
		next, err := cur.Child(i)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
