package key

import "fmt"

// ErrorKind identifies a kind of recoverable error returned by the
// constructors and decoders in this package. Returned errors wrap one of the
// kinds below and can be matched with errors.Is.
type ErrorKind string

// Error satisfies the error interface.
func (e ErrorKind) Error() string {
	return string(e)
}

const (
	// ErrInvalidEncoding indicates the text form failed base58 or checksum
	// decoding.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrWrongDataLength indicates a serialized body (or a component
	// such as the chain code) has the wrong length.
	ErrWrongDataLength = ErrorKind("ErrWrongDataLength")

	// ErrUnknownNetwork indicates the version tag, or the requested
	// network, is not in the parameter table.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrInvalidPrivateKeyLength indicates a private key is not 32 bytes,
	// or its serialized form does not start with the 0x00 pad byte.
	ErrInvalidPrivateKeyLength = ErrorKind("ErrInvalidPrivateKeyLength")

	// ErrInvalidSecretKey indicates a private key is zero or not less
	// than the curve order.
	ErrInvalidSecretKey = ErrorKind("ErrInvalidSecretKey")

	// ErrInvalidPublicKeyEncoding indicates a public key does not have
	// the length or prefix of a compressed point.
	ErrInvalidPublicKeyEncoding = ErrorKind("ErrInvalidPublicKeyEncoding")

	// ErrInvalidPublicKey indicates a compressed public key is not a
	// point on the curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrZeroDepthNonZeroFingerprint indicates a master key claims a
	// parent.
	ErrZeroDepthNonZeroFingerprint = ErrorKind("ErrZeroDepthNonZeroFingerprint")

	// ErrZeroDepthNonZeroIndex indicates a master key claims a child
	// index.
	ErrZeroDepthNonZeroIndex = ErrorKind("ErrZeroDepthNonZeroIndex")

	// ErrInvalidSeedLen indicates a master seed outside the 16 to 64 byte
	// range.
	ErrInvalidSeedLen = ErrorKind("ErrInvalidSeedLen")

	// ErrUnusableSeed indicates the seed produced an invalid master key.
	// A different seed has to be used.
	ErrUnusableSeed = ErrorKind("ErrUnusableSeed")

	// ErrMaxDepthExceeded indicates a derivation from a key already at
	// depth 255.
	ErrMaxDepthExceeded = ErrorKind("ErrMaxDepthExceeded")

	// ErrInvalidPath indicates a derivation path string is malformed.
	ErrInvalidPath = ErrorKind("ErrInvalidPath")

	// ErrNotPrivate indicates an operation that needs the secret key was
	// called on a public extended key.
	ErrNotPrivate = ErrorKind("ErrNotPrivate")
)

// DefectKind identifies a programming error detected by derive or neuter.
type DefectKind string

const (
	// DefectHardenedFromPublic is raised when hardened derivation is
	// requested from a public extended key.
	DefectHardenedFromPublic = DefectKind("hardened derivation from a public key")

	// DefectIndexOutOfRange is raised when a child index does not fit in
	// 31 bits.
	DefectIndexOutOfRange = DefectKind("child index out of range")

	// DefectInvalidTweak is raised when applying the derivation tweak
	// produced an invalid key. This happens with probability below 2^-127.
	DefectInvalidTweak = DefectKind("derivation produced an invalid key")

	// DefectInvariant is raised when a key produced internally fails the
	// constructor checks.
	DefectInvariant = DefectKind("extended key invariant violated")
)

// DefectError is the panic value raised on a defect. Defects are never
// returned; code that only handles decoded input cannot trigger them.
type DefectError struct {
	Kind DefectKind
	Err  error
}

// Error satisfies the error interface.
func (d *DefectError) Error() string {
	if d.Err == nil {
		return "defect: " + string(d.Kind)
	}
	return fmt.Sprintf("defect: %s: %v", d.Kind, d.Err)
}

// Unwrap returns the underlying cause, if any.
func (d *DefectError) Unwrap() error {
	return d.Err
}

// defect logs and raises a DefectError.
func defect(kind DefectKind, err error) {
	d := &DefectError{Kind: kind, Err: err}
	log.Criticalf("%v", d)
	panic(d)
}
