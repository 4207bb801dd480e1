// Package hashes contains the value types and contracts for incremental
// one-way hashing: named digest algorithm descriptors and the streaming
// digest context interface.
package hashes

// Algorithm names a digest algorithm together with its output size in bytes.
// The name uses the engine's lowercase naming scheme.
type Algorithm struct {
	Name string
	Size int
}

// Digest algorithms known to the default engine build.
var (
	MD5        = Algorithm{Name: "md5", Size: 16}
	SHA1       = Algorithm{Name: "sha1", Size: 20}
	SHA224     = Algorithm{Name: "sha224", Size: 28}
	SHA256     = Algorithm{Name: "sha256", Size: 32}
	SHA384     = Algorithm{Name: "sha384", Size: 48}
	SHA512     = Algorithm{Name: "sha512", Size: 64}
	SHA3x256   = Algorithm{Name: "sha3-256", Size: 32}
	SHA3x512   = Algorithm{Name: "sha3-512", Size: 64}
	BLAKE2b256 = Algorithm{Name: "blake2b-256", Size: 32}
	BLAKE2b512 = Algorithm{Name: "blake2b-512", Size: 64}
)

// StreamingDigestContext is a stateful incremental hash. Like cipher
// contexts it has a single owner, is not internally synchronized, and must
// be finalized or closed exactly once.
type StreamingDigestContext interface {
	// Update feeds bytes into the hash. There is no length restriction.
	Update(chunk []byte)

	// Finalize produces exactly digestSize bytes and releases the context.
	// The caller supplies the digest size for the algorithm; a mismatch is
	// reported by the engine, this layer does not validate it.
	Finalize(digestSize int) ([]byte, error)

	// Copy forks an independent context carrying the accumulated state so
	// far. Subsequent updates to the original and the copy diverge.
	Copy() (StreamingDigestContext, error)

	// Close discards the context. Closing an already-consumed context is a
	// no-op.
	Close() error
}

// DigestBackend resolves digest algorithm names and opens streaming digest
// contexts.
type DigestBackend interface {
	// IsSupported reports whether the engine provides the named algorithm.
	// It never returns an error.
	IsSupported(name string) bool

	// CreateDigestContext opens a streaming context for the named
	// algorithm, failing with UnsupportedAlgorithmError for unknown names.
	CreateDigestContext(name string) (StreamingDigestContext, error)
}
