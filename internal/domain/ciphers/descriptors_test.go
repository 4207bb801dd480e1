//go:build unit
// +build unit

package ciphers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmDescriptors(t *testing.T) {
	t.Run("AESKeySizes", func(t *testing.T) {
		tests := []struct {
			keyLen   int
			wantBits int
			wantErr  bool
		}{
			{16, 128, false},
			{24, 192, false},
			{32, 256, false},
			{0, 0, true},
			{8, 0, true},
			{33, 0, true},
		}
		for _, tt := range tests {
			desc, err := NewAES(make([]byte, tt.keyLen))
			if tt.wantErr {
				assert.Error(t, err)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, CipherAES, desc.Kind())
			assert.Equal(t, "AES", desc.Name())
			assert.Equal(t, tt.wantBits, desc.KeySize())
			assert.Len(t, desc.Key(), tt.keyLen)
		}
	})

	t.Run("CamelliaKeySizes", func(t *testing.T) {
		desc, err := NewCamellia(make([]byte, 32))
		require.NoError(t, err)
		assert.Equal(t, CipherCamellia, desc.Kind())
		assert.Equal(t, 256, desc.KeySize())

		_, err = NewCamellia(make([]byte, 20))
		assert.Error(t, err)
	})

	t.Run("TripleDESFixedKeySize", func(t *testing.T) {
		desc, err := NewTripleDES(make([]byte, 24))
		require.NoError(t, err)
		assert.Equal(t, CipherTripleDES, desc.Kind())
		assert.Equal(t, 192, desc.KeySize())

		_, err = NewTripleDES(make([]byte, 16))
		assert.Error(t, err)
	})
}

func TestModeDescriptors(t *testing.T) {
	iv := make([]byte, 16)

	t.Run("ExactlyOnePayloadVariant", func(t *testing.T) {
		cbc := NewCBC(iv)
		assert.True(t, cbc.HasIV())
		assert.False(t, cbc.HasNonce())
		assert.Equal(t, iv, cbc.IVOrNonce())

		ctr := NewCTR(iv)
		assert.False(t, ctr.HasIV())
		assert.True(t, ctr.HasNonce())
		assert.Equal(t, iv, ctr.IVOrNonce())

		ecb := NewECB()
		assert.False(t, ecb.HasIV())
		assert.False(t, ecb.HasNonce())
		assert.Nil(t, ecb.IVOrNonce())
	})

	t.Run("StreamingClassification", func(t *testing.T) {
		assert.False(t, NewCBC(iv).IsStreaming())
		assert.False(t, NewECB().IsStreaming())
		assert.True(t, NewCTR(iv).IsStreaming())
		assert.True(t, NewOFB(iv).IsStreaming())
		assert.True(t, NewCFB(iv).IsStreaming())
	})

	t.Run("Names", func(t *testing.T) {
		assert.Equal(t, "CBC", NewCBC(iv).Name())
		assert.Equal(t, "CTR", NewCTR(iv).Name())
		assert.Equal(t, "ECB", NewECB().Name())
		assert.Equal(t, "OFB", NewOFB(iv).Name())
		assert.Equal(t, "CFB", NewCFB(iv).Name())
	})
}

func TestNewCipherByName(t *testing.T) {
	key := make([]byte, 16)

	tests := []struct {
		name     string
		key      []byte
		wantKind CipherKind
		wantErr  bool
	}{
		{"AES", key, CipherAES, false},
		{"aes", key, CipherAES, false},
		{"Camellia", key, CipherCamellia, false},
		{"TripleDES", make([]byte, 24), CipherTripleDES, false},
		{"3des", make([]byte, 24), CipherTripleDES, false},
		{"des-ede3", make([]byte, 24), CipherTripleDES, false},
		{"Blowfish", key, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := NewCipherByName(tt.name, tt.key)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, desc.Kind())
		})
	}
}

func TestNewModeByName(t *testing.T) {
	iv := make([]byte, 16)

	t.Run("RequiresIVOrNonce", func(t *testing.T) {
		for _, name := range []string{"CBC", "CTR", "OFB", "CFB"} {
			_, err := NewModeByName(name, nil)
			assert.Error(t, err, name)

			mode, err := NewModeByName(name, iv)
			require.NoError(t, err, name)
			assert.Equal(t, iv, mode.IVOrNonce())
		}
	})

	t.Run("ECBRejectsIV", func(t *testing.T) {
		_, err := NewModeByName("ECB", iv)
		assert.Error(t, err)

		mode, err := NewModeByName("ecb", nil)
		require.NoError(t, err)
		assert.Equal(t, ModeECB, mode.Kind())
	})

	t.Run("UnknownMode", func(t *testing.T) {
		_, err := NewModeByName("GCM", iv)
		assert.Error(t, err)
	})
}
