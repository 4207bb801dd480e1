//go:build unit
// +build unit

package cryptography

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"cipher_stream_service/internal/domain/ciphers"
	"cipher_stream_service/internal/domain/hashes"
	"cipher_stream_service/internal/infrastructure/engine"
	pkgTesting "cipher_stream_service/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDigestBackend(t *testing.T) hashes.DigestBackend {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	backend, err := NewDigestBackend(engine.New(), logger)
	require.NoError(t, err)
	return backend
}

func TestDigestSupportQuery(t *testing.T) {
	backend := setupDigestBackend(t)

	for _, alg := range []hashes.Algorithm{hashes.MD5, hashes.SHA1, hashes.SHA256, hashes.SHA512, hashes.SHA3x256, hashes.BLAKE2b512} {
		assert.True(t, backend.IsSupported(alg.Name), alg.Name)
	}
	assert.False(t, backend.IsSupported("whirlpool"))

	_, err := backend.CreateDigestContext("whirlpool")
	var algErr *ciphers.UnsupportedAlgorithmError
	require.ErrorAs(t, err, &algErr)
	assert.Equal(t, "whirlpool", algErr.Name)
}

func TestDigestFinalize(t *testing.T) {
	backend := setupDigestBackend(t)

	ctx, err := backend.CreateDigestContext(hashes.SHA256.Name)
	require.NoError(t, err)
	ctx.Update([]byte("ab"))
	ctx.Update([]byte("c"))

	sum, err := ctx.Finalize(hashes.SHA256.Size)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(sum))
}

func TestDigestFinalizeSizeMismatch(t *testing.T) {
	backend := setupDigestBackend(t)

	ctx, err := backend.CreateDigestContext(hashes.SHA256.Name)
	require.NoError(t, err)
	_, err = ctx.Finalize(20)
	require.Error(t, err)
	var engineErr *ciphers.EngineError
	assert.ErrorAs(t, err, &engineErr)

	// The failed finalize still consumed the context.
	_, err = ctx.Finalize(hashes.SHA256.Size)
	assert.ErrorIs(t, err, ciphers.ErrContextConsumed)
}

func TestDigestCopyIndependence(t *testing.T) {
	backend := setupDigestBackend(t)

	oneShot := func(t *testing.T, alg hashes.Algorithm, data []byte) []byte {
		t.Helper()
		ctx, err := backend.CreateDigestContext(alg.Name)
		require.NoError(t, err)
		ctx.Update(data)
		sum, err := ctx.Finalize(alg.Size)
		require.NoError(t, err)
		return sum
	}

	// Every advertised digest must support forking, including the sha3
	// family whose native state cannot be marshaled.
	algorithms := []hashes.Algorithm{
		hashes.MD5, hashes.SHA1, hashes.SHA224, hashes.SHA256, hashes.SHA384,
		hashes.SHA512, hashes.SHA3x256, hashes.SHA3x512, hashes.BLAKE2b256,
		hashes.BLAKE2b512,
	}
	for _, alg := range algorithms {
		t.Run(alg.Name, func(t *testing.T) {
			ctx, err := backend.CreateDigestContext(alg.Name)
			require.NoError(t, err)
			ctx.Update([]byte("shared prefix "))

			fork, err := ctx.Copy()
			require.NoError(t, err)

			ctx.Update([]byte("left"))
			fork.Update([]byte("right"))

			leftSum, err := ctx.Finalize(alg.Size)
			require.NoError(t, err)
			rightSum, err := fork.Finalize(alg.Size)
			require.NoError(t, err)

			assert.Equal(t, oneShot(t, alg, []byte("shared prefix left")), leftSum)
			assert.Equal(t, oneShot(t, alg, []byte("shared prefix right")), rightSum)
		})
	}

	t.Run("SHA256KnownValues", func(t *testing.T) {
		ctx, err := backend.CreateDigestContext(hashes.SHA256.Name)
		require.NoError(t, err)
		ctx.Update([]byte("shared prefix "))

		fork, err := ctx.Copy()
		require.NoError(t, err)
		ctx.Update([]byte("left"))
		fork.Update([]byte("right"))

		leftSum, err := ctx.Finalize(hashes.SHA256.Size)
		require.NoError(t, err)
		rightSum, err := fork.Finalize(hashes.SHA256.Size)
		require.NoError(t, err)

		leftWant := sha256.Sum256([]byte("shared prefix left"))
		rightWant := sha256.Sum256([]byte("shared prefix right"))
		assert.Equal(t, leftWant[:], leftSum)
		assert.Equal(t, rightWant[:], rightSum)
	})
}

func TestDigestConsumedPolicy(t *testing.T) {
	backend := setupDigestBackend(t)

	ctx, err := backend.CreateDigestContext(hashes.SHA1.Name)
	require.NoError(t, err)
	_, err = ctx.Finalize(hashes.SHA1.Size)
	require.NoError(t, err)

	_, err = ctx.Finalize(hashes.SHA1.Size)
	assert.ErrorIs(t, err, ciphers.ErrContextConsumed)

	_, err = ctx.Copy()
	assert.ErrorIs(t, err, ciphers.ErrContextConsumed)

	assert.Panics(t, func() { ctx.Update([]byte("late")) })

	require.NoError(t, ctx.Close())
}
