package engine

import "errors"

// Direction selects between encryption and decryption for a cipher context.
type Direction int

// Cipher context directions.
const (
	Encrypt Direction = iota
	Decrypt
)

// Errors reported by the native layer.
var (
	// ErrUnknownAlgorithm means the requested name is not in the engine's
	// algorithm table.
	ErrUnknownAlgorithm = errors.New("algorithm not provided by engine")

	// ErrShortBuffer means the caller-supplied output buffer is smaller
	// than the operation requires.
	ErrShortBuffer = errors.New("output buffer too short")

	// ErrPartialBlock means a block-mode stream ended on an incomplete
	// block while padding was disabled.
	ErrPartialBlock = errors.New("input ends on a partial block and padding is disabled")

	// ErrBadPadding means padded decryption produced an invalid PKCS7 tail.
	ErrBadPadding = errors.New("invalid padding")

	// ErrContextReleased means a context was used after release.
	ErrContextReleased = errors.New("native context already released")
)

// Engine resolves algorithm names to native handles.
type Engine interface {
	// CipherByName resolves a cipher name such as "aes-128-cbc", failing
	// with ErrUnknownAlgorithm for names outside the table.
	CipherByName(name string) (CipherAlgorithm, error)

	// DigestByName resolves a digest name such as "sha256", failing with
	// ErrUnknownAlgorithm for names outside the table.
	DigestByName(name string) (DigestAlgorithm, error)
}

// CipherAlgorithm is a resolved cipher table entry.
type CipherAlgorithm interface {
	// Name returns the table name the entry was resolved under.
	Name() string

	// BlockSize returns the block size in bytes.
	BlockSize() int

	// KeySize returns the required key length in bytes.
	KeySize() int

	// NewContext opens a streaming context bound to key and, for modes that
	// take one, an IV or nonce of exactly BlockSize bytes. ECB entries
	// require ivOrNonce to be empty.
	NewContext(dir Direction, key, ivOrNonce []byte) (CipherContext, error)
}

// CipherContext is a low-level streaming transform. The caller owns the
// output buffers: Update needs room for len(src)+BlockSize-1 bytes, Finalize
// for BlockSize bytes. Contexts are not safe for concurrent use.
type CipherContext interface {
	// SetPadding enables or disables internal PKCS7 padding. Padding is
	// enabled on creation; stream-mode contexts ignore the flag.
	SetPadding(enabled bool)

	// Update consumes src, writes any completed output into dst and
	// returns the number of bytes written.
	Update(dst, src []byte) (int, error)

	// Finalize flushes the tail into dst, returns the number of bytes
	// written and releases the context.
	Finalize(dst []byte) (int, error)

	// Release frees the context without flushing. Safe to call more than
	// once.
	Release()
}

// DigestAlgorithm is a resolved digest table entry.
type DigestAlgorithm interface {
	// Name returns the table name the entry was resolved under.
	Name() string

	// Size returns the digest output size in bytes.
	Size() int

	// NewContext opens a fresh hashing context.
	NewContext() (DigestContext, error)
}

// DigestContext is a low-level incremental hash.
type DigestContext interface {
	// Update feeds bytes into the hash state.
	Update(p []byte) error

	// Finalize writes the digest into dst, which must be exactly Size
	// bytes long, and releases the context.
	Finalize(dst []byte) (int, error)

	// Copy forks an independent context with the same accumulated state.
	Copy() (DigestContext, error)

	// Release frees the context without producing a digest. Safe to call
	// more than once.
	Release()
}
