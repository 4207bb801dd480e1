package ciphers

import "fmt"

// CipherKind identifies a supported block-cipher family. The enumeration is
// closed: registry dispatch is a flat table lookup keyed by kind, extended
// only by adding a new constant here plus an adapter registration.
type CipherKind int

// Supported cipher kinds.
const (
	CipherAES CipherKind = iota
	CipherCamellia
	CipherTripleDES
)

// String returns the display name of the cipher kind.
func (k CipherKind) String() string {
	switch k {
	case CipherAES:
		return "AES"
	case CipherCamellia:
		return "Camellia"
	case CipherTripleDES:
		return "TripleDES"
	default:
		return fmt.Sprintf("CipherKind(%d)", int(k))
	}
}

// AlgorithmDescriptor describes a concrete keyed cipher: the cipher family,
// the key material and the key size in bits derived from the key length.
// Descriptors are immutable after construction and owned by the caller; the
// engine retains no copy of the key beyond context creation.
type AlgorithmDescriptor struct {
	kind    CipherKind
	name    string
	key     []byte
	keySize int
}

// tripleDESKeyLen is the only key length accepted for three-key 3DES.
const tripleDESKeyLen = 24

func validAESKeyLen(n int) bool {
	return n == 16 || n == 24 || n == 32
}

// NewAES builds an AES descriptor. The key must be 16, 24 or 32 bytes
// (AES-128, AES-192, AES-256).
func NewAES(key []byte) (AlgorithmDescriptor, error) {
	if !validAESKeyLen(len(key)) {
		return AlgorithmDescriptor{}, fmt.Errorf("invalid AES key length %d: must be 16, 24 or 32 bytes", len(key))
	}
	return AlgorithmDescriptor{kind: CipherAES, name: "AES", key: key, keySize: len(key) * 8}, nil
}

// NewCamellia builds a Camellia descriptor. Camellia shares the AES key
// geometry: 16, 24 or 32 byte keys.
func NewCamellia(key []byte) (AlgorithmDescriptor, error) {
	if !validAESKeyLen(len(key)) {
		return AlgorithmDescriptor{}, fmt.Errorf("invalid Camellia key length %d: must be 16, 24 or 32 bytes", len(key))
	}
	return AlgorithmDescriptor{kind: CipherCamellia, name: "Camellia", key: key, keySize: len(key) * 8}, nil
}

// NewTripleDES builds a three-key 3DES descriptor from a 24 byte key.
func NewTripleDES(key []byte) (AlgorithmDescriptor, error) {
	if len(key) != tripleDESKeyLen {
		return AlgorithmDescriptor{}, fmt.Errorf("invalid TripleDES key length %d: must be %d bytes", len(key), tripleDESKeyLen)
	}
	return AlgorithmDescriptor{kind: CipherTripleDES, name: "TripleDES", key: key, keySize: tripleDESKeyLen * 8}, nil
}

// Kind returns the cipher family.
func (d AlgorithmDescriptor) Kind() CipherKind { return d.kind }

// Name returns the display name used when composing native algorithm names.
func (d AlgorithmDescriptor) Name() string { return d.name }

// Key returns the key material.
func (d AlgorithmDescriptor) Key() []byte { return d.key }

// KeySize returns the key size in bits.
func (d AlgorithmDescriptor) KeySize() int { return d.keySize }
