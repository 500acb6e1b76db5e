package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestFieldCipher_RoundTrip(t *testing.T) {
	fieldCipher := NewFieldCipher(testKeyHex)

	encrypted, err := fieldCipher.Encrypt("token-secreto-123")
	require.NoError(t, err)
	assert.NotEqual(t, "token-secreto-123", encrypted)

	decrypted, err := fieldCipher.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "token-secreto-123", decrypted)
}

func TestFieldCipher_NoncesDistintos(t *testing.T) {
	fieldCipher := NewFieldCipher(testKeyHex)

	first, err := fieldCipher.Encrypt("mesmo texto")
	require.NoError(t, err)

	second, err := fieldCipher.Encrypt("mesmo texto")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFieldCipher_Decrypt_FalhasNormalizadas(t *testing.T) {
	fieldCipher := NewFieldCipher(testKeyHex)

	valid, err := fieldCipher.Encrypt("token")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(valid)
	require.NoError(t, err)

	// adultera o último byte do ciphertext para quebrar a autenticação
	tampered := make([]byte, len(raw))
	copy(tampered, raw)
	tampered[len(tampered)-1] ^= 0xff

	testCases := []struct {
		name       string
		ciphertext string
	}{
		{
			name:       "Base64 inválido",
			ciphertext: "%%%não-é-base64%%%",
		},
		{
			name:       "Payload menor que o nonce",
			ciphertext: base64.StdEncoding.EncodeToString([]byte("curto")),
		},
		{
			name:       "Ciphertext adulterado",
			ciphertext: base64.StdEncoding.EncodeToString(tampered),
		},
		{
			name:       "Valor cifrado com outra chave",
			ciphertext: mustEncryptWithKey(t, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", "token"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fieldCipher.Decrypt(tc.ciphertext)
			assert.ErrorIs(t, err, ErrDecrypt)
		})
	}
}

func TestFieldCipher_ChaveInvalida(t *testing.T) {
	testCases := []struct {
		name   string
		keyHex string
	}{
		{
			name:   "Hexadecimal malformado",
			keyHex: "zz",
		},
		{
			name:   "Tamanho errado",
			keyHex: "0001020304",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fieldCipher := NewFieldCipher(tc.keyHex)

			_, err := fieldCipher.Encrypt("token")
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrDecrypt)
		})
	}
}

func mustEncryptWithKey(t *testing.T, keyHex, plaintext string) string {
	t.Helper()

	encrypted, err := NewFieldCipher(keyHex).Encrypt(plaintext)
	require.NoError(t, err)
	return encrypted
}
