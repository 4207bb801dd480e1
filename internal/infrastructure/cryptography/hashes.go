package cryptography

import (
	"fmt"

	"cipher_stream_service/internal/domain/ciphers"
	"cipher_stream_service/internal/domain/hashes"
	"cipher_stream_service/internal/infrastructure/engine"
	"cipher_stream_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// digestBackend implements hashes.DigestBackend over a native engine.
type digestBackend struct {
	engine engine.Engine
	logger logger.Logger
}

// NewDigestBackend creates a digest backend.
func NewDigestBackend(eng engine.Engine, logger logger.Logger) (hashes.DigestBackend, error) {
	return &digestBackend{engine: eng, logger: logger}, nil
}

func (b *digestBackend) IsSupported(name string) bool {
	_, err := b.engine.DigestByName(name)
	return err == nil
}

func (b *digestBackend) CreateDigestContext(name string) (hashes.StreamingDigestContext, error) {
	alg, err := b.engine.DigestByName(name)
	if err != nil {
		return nil, &ciphers.UnsupportedAlgorithmError{Name: name}
	}

	native, err := alg.NewContext()
	if err != nil {
		return nil, &ciphers.EngineError{Op: "DigestInit", Err: err}
	}

	ctx := &digestContext{
		id:     uuid.New().String(),
		name:   alg.Name(),
		native: native,
		logger: b.logger,
	}
	b.logger.Info("opened digest context", "id", ctx.id, "algorithm", alg.Name())
	return ctx, nil
}

// digestContext wraps a native hashing context with exclusive ownership and
// a terminal consumed state. It is not safe for concurrent use.
type digestContext struct {
	id       string
	name     string
	native   engine.DigestContext
	consumed bool
	logger   logger.Logger
}

// Update feeds bytes into the hash. Feeding a consumed context is a caller
// contract violation and panics, since the signature carries no error.
func (c *digestContext) Update(chunk []byte) {
	if c.consumed {
		panic(fmt.Sprintf("digest context %s used after finalize", c.id))
	}
	if err := c.native.Update(chunk); err != nil {
		c.release()
		panic(fmt.Sprintf("digest context %s: %v", c.id, err))
	}
}

func (c *digestContext) Finalize(digestSize int) ([]byte, error) {
	if c.consumed {
		return nil, fmt.Errorf("digest context %s: %w", c.id, ciphers.ErrContextConsumed)
	}

	buf := make([]byte, digestSize)
	n, err := c.native.Finalize(buf)
	c.release()
	if err != nil {
		return nil, &ciphers.EngineError{Op: "DigestFinal", Err: err}
	}
	c.logger.Info("finalized digest context", "id", c.id, "algorithm", c.name)
	return buf[:n], nil
}

func (c *digestContext) Copy() (hashes.StreamingDigestContext, error) {
	if c.consumed {
		return nil, fmt.Errorf("digest context %s: %w", c.id, ciphers.ErrContextConsumed)
	}

	nativeCopy, err := c.native.Copy()
	if err != nil {
		return nil, &ciphers.EngineError{Op: "DigestCopy", Err: err}
	}
	forked := &digestContext{
		id:     uuid.New().String(),
		name:   c.name,
		native: nativeCopy,
		logger: c.logger,
	}
	c.logger.Info("copied digest context", "id", c.id, "fork", forked.id)
	return forked, nil
}

func (c *digestContext) Close() error {
	if c.consumed {
		return nil
	}
	c.release()
	return nil
}

func (c *digestContext) release() {
	if c.consumed {
		return
	}
	c.consumed = true
	c.native.Release()
}
