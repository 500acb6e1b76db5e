package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrDecrypt é o erro normalizado para qualquer falha de decifragem;
// o erro criptográfico original nunca é exposto aos chamadores
var ErrDecrypt = errors.New("falha ao decifrar credencial")

// FieldCipher cifra e decifra campos individuais (tokens de acesso)
// com uma chave simétrica única do processo
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type fieldCipher struct {
	keyHex string

	mu     sync.Mutex
	cached cipher.AEAD
}

// NewFieldCipher cria uma cifra de campo a partir da chave em hexadecimal
// (32 bytes). A chave é materializada na primeira utilização e mantida em cache.
func NewFieldCipher(keyHex string) FieldCipher {
	return &fieldCipher{keyHex: keyHex}
}

func (c *fieldCipher) loadAEAD() (cipher.AEAD, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	key, err := hex.DecodeString(c.keyHex)
	if err != nil {
		return nil, fmt.Errorf("chave de cifragem inválida: %w", err)
	}

	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("chave de cifragem deve ter %d bytes, recebeu %d", chacha20poly1305.KeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar cifra: %w", err)
	}

	c.cached = aead
	return aead, nil
}

// Encrypt cifra o texto e retorna nonce+ciphertext em base64
func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	aead, err := c.loadAEAD()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("erro ao gerar nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

// Decrypt decifra um valor produzido por Encrypt. Qualquer falha
// (encoding, nonce truncado, autenticação) retorna ErrDecrypt.
func (c *fieldCipher) Decrypt(ciphertext string) (string, error) {
	aead, err := c.loadAEAD()
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecrypt
	}

	if len(raw) <= chacha20poly1305.NonceSizeX {
		return "", ErrDecrypt
	}

	plaintext, err := aead.Open(nil, raw[:chacha20poly1305.NonceSizeX], raw[chacha20poly1305.NonceSizeX:], nil)
	if err != nil {
		return "", ErrDecrypt
	}

	return string(plaintext), nil
}
