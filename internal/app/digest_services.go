package app

import (
	"context"
	"fmt"
	"time"

	"cipher_stream_service/internal/domain/hashes"
	"cipher_stream_service/internal/domain/operations"
	"cipher_stream_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// DigestService hashes whole messages over the streaming digest backend and
// records completed passes in the audit repository when one is configured.
type DigestService struct {
	backend hashes.DigestBackend
	repo    operations.Repository
	logger  logger.Logger
}

// NewDigestService creates a DigestService. The repository may be nil, in
// which case no audit records are written.
func NewDigestService(backend hashes.DigestBackend, repo operations.Repository, logger logger.Logger) (*DigestService, error) {
	if backend == nil {
		return nil, fmt.Errorf("digest backend is required")
	}
	return &DigestService{backend: backend, repo: repo, logger: logger}, nil
}

// Digest hashes data with the given algorithm.
func (s *DigestService) Digest(ctx context.Context, algorithm hashes.Algorithm, data []byte) ([]byte, error) {
	dctx, err := s.backend.CreateDigestContext(algorithm.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest context: %w", err)
	}
	defer func() {
		_ = dctx.Close()
	}()

	dctx.Update(data)
	sum, err := dctx.Finalize(algorithm.Size)
	if err != nil {
		return nil, fmt.Errorf("digest failed: %w", err)
	}

	s.recordOperation(ctx, algorithm.Name, len(data), len(sum))
	return sum, nil
}

// IsSupported reports whether the engine build provides the named digest.
func (s *DigestService) IsSupported(name string) bool {
	return s.backend.IsSupported(name)
}

// SupportedDigests probes the well-known digest algorithms against the
// engine and returns the usable ones.
func (s *DigestService) SupportedDigests() []hashes.Algorithm {
	known := []hashes.Algorithm{
		hashes.MD5, hashes.SHA1, hashes.SHA224, hashes.SHA256, hashes.SHA384,
		hashes.SHA512, hashes.SHA3x256, hashes.SHA3x512, hashes.BLAKE2b256,
		hashes.BLAKE2b512,
	}
	var out []hashes.Algorithm
	for _, alg := range known {
		if s.backend.IsSupported(alg.Name) {
			out = append(out, alg)
		}
	}
	return out
}

func (s *DigestService) recordOperation(ctx context.Context, algorithm string, inBytes, outBytes int) {
	if s.repo == nil {
		return
	}
	record := &operations.Record{
		ID:          uuid.NewString(),
		Algorithm:   algorithm,
		Direction:   operations.DirectionDigest,
		InputBytes:  int64(inBytes),
		OutputBytes: int64(outBytes),
		RequestedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to record operation", "id", record.ID, "error", err)
	}
}
