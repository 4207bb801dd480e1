package cryptography

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"cipher_stream_service/internal/domain/ciphers"
	"cipher_stream_service/internal/infrastructure/engine"
	"cipher_stream_service/internal/pkg/logger"

	"github.com/google/uuid"
)

type registryKey struct {
	cipher ciphers.CipherKind
	mode   ciphers.ModeKind
}

// cipherBackend implements ciphers.CipherBackend over a native engine.
type cipherBackend struct {
	engine   engine.Engine
	logger   logger.Logger
	mu       sync.RWMutex
	registry map[registryKey]ciphers.CipherAdapter
}

// NewCipherBackend creates a cipher backend with the default adapter
// registry populated.
func NewCipherBackend(eng engine.Engine, logger logger.Logger) (ciphers.CipherBackend, error) {
	b := &cipherBackend{
		engine:   eng,
		logger:   logger,
		registry: make(map[registryKey]ciphers.CipherAdapter),
	}
	if err := b.registerDefaultCiphers(); err != nil {
		return nil, fmt.Errorf("failed to register default ciphers: %w", err)
	}
	return b, nil
}

// keySizedCipherName composes names of the form "aes-128-cbc": the cipher
// name carries its key size in bits.
func keySizedCipherName(cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) string {
	return strings.ToLower(fmt.Sprintf("%s-%d-%s", cipher.Name(), cipher.KeySize(), mode.Name()))
}

// fixedCipherName composes names from a fixed prefix, e.g. "des-ede3-cfb".
// 3DES names carry no key-size component, matching the engine's table.
func fixedCipherName(prefix string) ciphers.CipherAdapter {
	return func(cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) string {
		return strings.ToLower(prefix + "-" + mode.Name())
	}
}

func (b *cipherBackend) registerDefaultCiphers() error {
	for _, ck := range []ciphers.CipherKind{ciphers.CipherAES, ciphers.CipherCamellia} {
		for _, mk := range []ciphers.ModeKind{ciphers.ModeCBC, ciphers.ModeCTR, ciphers.ModeECB, ciphers.ModeOFB, ciphers.ModeCFB} {
			if err := b.RegisterCipherAdapter(ck, mk, keySizedCipherName); err != nil {
				return err
			}
		}
	}
	for _, mk := range []ciphers.ModeKind{ciphers.ModeCBC, ciphers.ModeCFB, ciphers.ModeOFB} {
		if err := b.RegisterCipherAdapter(ciphers.CipherTripleDES, mk, fixedCipherName("des-ede3")); err != nil {
			return err
		}
	}
	return nil
}

func (b *cipherBackend) RegisterCipherAdapter(cipher ciphers.CipherKind, mode ciphers.ModeKind, adapter ciphers.CipherAdapter) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := registryKey{cipher: cipher, mode: mode}
	if _, exists := b.registry[key]; exists {
		return fmt.Errorf("%s/%s: %w", cipher, mode, ciphers.ErrDuplicateRegistration)
	}
	b.registry[key] = adapter
	return nil
}

// resolveCipher maps a descriptor pair to a native algorithm, keeping the
// two failure stages apart: no adapter registered versus a resolved name the
// engine does not provide.
func (b *cipherBackend) resolveCipher(cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) (engine.CipherAlgorithm, error) {
	b.mu.RLock()
	adapter, ok := b.registry[registryKey{cipher: cipher.Kind(), mode: mode.Kind()}]
	b.mu.RUnlock()
	if !ok {
		return nil, &ciphers.UnsupportedCombinationError{
			Cipher: cipher.Kind(),
			Mode:   mode.Kind(),
			Stage:  ciphers.StageNotRegistered,
		}
	}

	name := adapter(cipher, mode)
	alg, err := b.engine.CipherByName(name)
	if err != nil {
		return nil, &ciphers.UnsupportedCombinationError{
			Cipher: cipher.Kind(),
			Mode:   mode.Kind(),
			Stage:  ciphers.StageUnknownToEngine,
			Name:   name,
		}
	}
	return alg, nil
}

func (b *cipherBackend) IsSupported(cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) bool {
	_, err := b.resolveCipher(cipher, mode)
	return err == nil
}

func (b *cipherBackend) CreateEncryptContext(cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) (ciphers.StreamingCipherContext, error) {
	return b.createContext(engine.Encrypt, cipher, mode)
}

func (b *cipherBackend) CreateDecryptContext(cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) (ciphers.StreamingCipherContext, error) {
	return b.createContext(engine.Decrypt, cipher, mode)
}

func (b *cipherBackend) createContext(dir engine.Direction, cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) (ciphers.StreamingCipherContext, error) {
	alg, err := b.resolveCipher(cipher, mode)
	if err != nil {
		return nil, err
	}

	native, err := alg.NewContext(dir, cipher.Key(), mode.IVOrNonce())
	if err != nil {
		// The combination resolved as supported, so an init failure is an
		// invariant violation, not a data error.
		return nil, &ciphers.EngineError{Op: "CipherInit", Err: err}
	}
	// Padding is handled by the layer above this engine.
	native.SetPadding(false)

	ctx := &cipherContext{
		id:        uuid.New().String(),
		name:      alg.Name(),
		native:    native,
		blockSize: alg.BlockSize(),
		logger:    b.logger,
	}
	b.logger.Info("opened cipher context", "direction", directionName(dir), "id", ctx.id, "algorithm", alg.Name())
	return ctx, nil
}

func directionName(dir engine.Direction) string {
	if dir == engine.Encrypt {
		return "encrypt"
	}
	return "decrypt"
}

// cipherContext wraps a native context with exclusive ownership and a
// terminal consumed state. It is not safe for concurrent use.
type cipherContext struct {
	id        string
	name      string
	native    engine.CipherContext
	blockSize int
	consumed  bool
	logger    logger.Logger
}

func (c *cipherContext) BlockSize() int { return c.blockSize }

func (c *cipherContext) Update(chunk []byte) ([]byte, error) {
	if c.consumed {
		return nil, fmt.Errorf("context %s: %w", c.id, ciphers.ErrContextConsumed)
	}

	// One extra buffered block boundary may flush alongside this chunk.
	buf := make([]byte, len(chunk)+c.blockSize-1)
	n, err := c.native.Update(buf, chunk)
	if err != nil {
		c.release()
		if errors.Is(err, engine.ErrShortBuffer) {
			return nil, fmt.Errorf("context %s: %w", c.id, ciphers.ErrBufferSizing)
		}
		return nil, &ciphers.EngineError{Op: "CipherUpdate", Err: err}
	}
	return buf[:n], nil
}

func (c *cipherContext) Finalize() ([]byte, error) {
	if c.consumed {
		return nil, fmt.Errorf("context %s: %w", c.id, ciphers.ErrContextConsumed)
	}

	buf := make([]byte, c.blockSize)
	n, err := c.native.Finalize(buf)
	c.release()
	if err != nil {
		if errors.Is(err, engine.ErrShortBuffer) {
			return nil, fmt.Errorf("context %s: %w", c.id, ciphers.ErrBufferSizing)
		}
		return nil, &ciphers.EngineError{Op: "CipherFinal", Err: err}
	}
	c.logger.Info("finalized cipher context", "id", c.id, "algorithm", c.name)
	return buf[:n], nil
}

func (c *cipherContext) Close() error {
	if c.consumed {
		return nil
	}
	c.release()
	c.logger.Info("discarded cipher context", "id", c.id, "algorithm", c.name)
	return nil
}

// release transitions the context to its terminal state and frees the native
// context exactly once.
func (c *cipherContext) release() {
	if c.consumed {
		return
	}
	c.consumed = true
	c.native.Release()
}
