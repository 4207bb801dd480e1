package ciphers

// CipherAdapter composes the native engine name for a resolved cipher/mode
// pair, e.g. "aes-128-cbc" or "des-ede3-cfb".
type CipherAdapter func(cipher AlgorithmDescriptor, mode ModeDescriptor) string

// StreamingCipherContext is a stateful single-pass encryption or decryption
// stream. Contexts are owned by a single caller, are not safe for concurrent
// use, and must be consumed exactly once: zero or more Update calls, then one
// Finalize, or Close to discard early. Any use after Finalize or Close fails
// with ErrContextConsumed.
type StreamingCipherContext interface {
	// BlockSize returns the block size of the bound algorithm in bytes.
	BlockSize() int

	// Update feeds a chunk of any length, including zero and sizes that do
	// not align to the block size, and returns the bytes produced so far.
	// The returned slice may be empty when the chunk does not complete a
	// block, or up to len(chunk)+BlockSize()-1 bytes long.
	Update(chunk []byte) ([]byte, error)

	// Finalize flushes any buffered partial block, returns the tail bytes
	// (zero to BlockSize() bytes) and releases the native context.
	Finalize() ([]byte, error)

	// Close discards the context and releases the native context without
	// producing a tail. Closing an already-consumed context is a no-op.
	Close() error
}

// CipherBackend resolves abstract (cipher, mode) combinations against the
// native engine and opens streaming contexts. Padding is never applied at
// this layer; a layer above wraps Update/Finalize output with PKCS7 padding
// when the mode requires block-aligned input.
type CipherBackend interface {
	// RegisterCipherAdapter installs a naming adapter for a cipher/mode
	// pair. Registration is one-shot: a second attempt for the same pair
	// fails with ErrDuplicateRegistration and leaves the first adapter in
	// effect.
	RegisterCipherAdapter(cipher CipherKind, mode ModeKind, adapter CipherAdapter) error

	// IsSupported reports whether the combination resolves to an algorithm
	// the engine provides. It never returns an error: unregistered pairs
	// and engine-unknown names both report false.
	IsSupported(cipher AlgorithmDescriptor, mode ModeDescriptor) bool

	// CreateEncryptContext opens a streaming encryption context bound to
	// the descriptor's key and the mode's IV or nonce.
	CreateEncryptContext(cipher AlgorithmDescriptor, mode ModeDescriptor) (StreamingCipherContext, error)

	// CreateDecryptContext opens a streaming decryption context bound to
	// the descriptor's key and the mode's IV or nonce.
	CreateDecryptContext(cipher AlgorithmDescriptor, mode ModeDescriptor) (StreamingCipherContext, error)
}
