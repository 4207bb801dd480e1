// Package app wires the streaming backends, the padding layer and the
// operation audit repository into whole-message services consumed by the CLI
// and the REST API.
package app

import (
	"context"
	"fmt"
	"time"

	"cipher_stream_service/internal/domain/ciphers"
	"cipher_stream_service/internal/domain/operations"
	"cipher_stream_service/internal/pkg/logger"
	"cipher_stream_service/internal/pkg/padding"

	"github.com/google/uuid"
)

// CipherService encrypts and decrypts whole messages over the streaming
// backend. Block modes are padded with PKCS7 above the engine; stream modes
// pass through unpadded. Completed passes are recorded in the audit
// repository when one is configured.
type CipherService struct {
	backend ciphers.CipherBackend
	repo    operations.Repository
	logger  logger.Logger
}

// NewCipherService creates a CipherService. The repository may be nil, in
// which case no audit records are written.
func NewCipherService(backend ciphers.CipherBackend, repo operations.Repository, logger logger.Logger) (*CipherService, error) {
	if backend == nil {
		return nil, fmt.Errorf("cipher backend is required")
	}
	return &CipherService{backend: backend, repo: repo, logger: logger}, nil
}

// Encrypt runs one full encryption pass and returns the ciphertext.
func (s *CipherService) Encrypt(ctx context.Context, cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor, plaintext []byte) ([]byte, error) {
	sctx, err := s.backend.CreateEncryptContext(cipher, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create encrypt context: %w", err)
	}
	defer func() {
		_ = sctx.Close()
	}()

	data := plaintext
	if !mode.IsStreaming() {
		data, err = padding.Pad(plaintext, sctx.BlockSize())
		if err != nil {
			return nil, fmt.Errorf("failed to pad plaintext: %w", err)
		}
	}

	out, err := sctx.Update(data)
	if err != nil {
		return nil, fmt.Errorf("encryption failed: %w", err)
	}
	tail, err := sctx.Finalize()
	if err != nil {
		return nil, fmt.Errorf("encryption failed: %w", err)
	}
	out = append(out, tail...)

	s.recordOperation(ctx, displayName(cipher, mode), operations.DirectionEncrypt, len(plaintext), len(out))
	return out, nil
}

// Decrypt runs one full decryption pass and returns the plaintext.
func (s *CipherService) Decrypt(ctx context.Context, cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor, ciphertext []byte) ([]byte, error) {
	sctx, err := s.backend.CreateDecryptContext(cipher, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create decrypt context: %w", err)
	}
	defer func() {
		_ = sctx.Close()
	}()

	out, err := sctx.Update(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	tail, err := sctx.Finalize()
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	out = append(out, tail...)

	if !mode.IsStreaming() {
		out, err = padding.Unpad(out, sctx.BlockSize())
		if err != nil {
			return nil, fmt.Errorf("failed to unpad plaintext: %w", err)
		}
	}

	s.recordOperation(ctx, displayName(cipher, mode), operations.DirectionDecrypt, len(ciphertext), len(out))
	return out, nil
}

// IsSupported reports whether the combination is usable on this engine
// build.
func (s *CipherService) IsSupported(cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) bool {
	return s.backend.IsSupported(cipher, mode)
}

// Combination describes one usable cipher/mode pairing.
type Combination struct {
	Cipher  string
	KeySize int
	Mode    string
}

// SupportedCombinations probes every cipher kind, key size and mode against
// the registry and returns the usable pairings.
func (s *CipherService) SupportedCombinations() []Combination {
	type candidate struct {
		name    string
		keyLens []int
		build   func(key []byte) (ciphers.AlgorithmDescriptor, error)
	}
	candidates := []candidate{
		{"AES", []int{16, 24, 32}, ciphers.NewAES},
		{"Camellia", []int{16, 24, 32}, ciphers.NewCamellia},
		{"TripleDES", []int{24}, ciphers.NewTripleDES},
	}
	modes := []func() ciphers.ModeDescriptor{
		func() ciphers.ModeDescriptor { return ciphers.NewCBC(nil) },
		func() ciphers.ModeDescriptor { return ciphers.NewCTR(nil) },
		func() ciphers.ModeDescriptor { return ciphers.NewECB() },
		func() ciphers.ModeDescriptor { return ciphers.NewOFB(nil) },
		func() ciphers.ModeDescriptor { return ciphers.NewCFB(nil) },
	}

	var out []Combination
	for _, c := range candidates {
		for _, keyLen := range c.keyLens {
			desc, err := c.build(make([]byte, keyLen))
			if err != nil {
				continue
			}
			for _, newMode := range modes {
				mode := newMode()
				if s.backend.IsSupported(desc, mode) {
					out = append(out, Combination{Cipher: c.name, KeySize: keyLen * 8, Mode: mode.Name()})
				}
			}
		}
	}
	return out
}

func (s *CipherService) recordOperation(ctx context.Context, algorithm, direction string, inBytes, outBytes int) {
	if s.repo == nil {
		return
	}
	record := &operations.Record{
		ID:          uuid.NewString(),
		Algorithm:   algorithm,
		Direction:   direction,
		InputBytes:  int64(inBytes),
		OutputBytes: int64(outBytes),
		RequestedAt: time.Now(),
	}
	// The pass already succeeded; a failed audit write is logged, not
	// surfaced.
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to record operation", "id", record.ID, "error", err)
	}
}

func displayName(cipher ciphers.AlgorithmDescriptor, mode ciphers.ModeDescriptor) string {
	return fmt.Sprintf("%s-%d/%s", cipher.Name(), cipher.KeySize(), mode.Name())
}
