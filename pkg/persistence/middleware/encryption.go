package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// envelopeMarker prefixes the ciphertext carried in an envelope's name field.
const envelopeMarker = "__encrypted__:"

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new data.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.PuzzleStore
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that encrypts stored puzzles using AES-GCM (Envelope Encryption)
func NewEncryptionMiddleware(config EncryptionConfig) Middleware {
	if len(config.ActiveKey) != 32 {
		panic("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.PuzzleStore) ports.PuzzleStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}
}

func (m *encryptionMiddleware) Save(ctx context.Context, p domain.Puzzle) error {
	// 1. Serialize the real puzzle
	plainText, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	// 2. Encrypt
	ciphertext, err := encrypt(plainText, m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt puzzle: %w", err)
	}

	// 3. Create envelope
	// The envelope keeps the ID for keying and the creation time for
	// housekeeping; board, name and constraints are hidden in the
	// ciphertext. Serializing stores need a parseable grid, so the
	// envelope carries a fixed empty board of the minimum size.
	envelope := domain.Puzzle{
		ID:        p.ID,
		Name:      envelopeMarker + base64.StdEncoding.EncodeToString(ciphertext),
		Grid:      decoyBoard(),
		CreatedAt: p.CreatedAt,
	}

	return m.next.Save(ctx, envelope)
}

func (m *encryptionMiddleware) Load(ctx context.Context, id string) (domain.Puzzle, error) {
	// 1. Load envelope
	envelope, err := m.next.Load(ctx, id)
	if err != nil {
		return domain.Puzzle{}, err
	}

	// 2. Extract ciphertext
	// Fail secure: with encryption configured, a plain puzzle in the
	// backing store is an error, not a passthrough.
	if !strings.HasPrefix(envelope.Name, envelopeMarker) {
		return domain.Puzzle{}, errors.New("puzzle is missing the encrypted envelope")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(envelope.Name, envelopeMarker))
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to decode ciphertext base64: %w", err)
	}

	// 3. Decrypt (Try Active, then Fallback)
	plainText, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to decrypt puzzle: %w", err)
	}

	// 4. Deserialize
	var p domain.Puzzle
	if err := json.Unmarshal(plainText, &p); err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to unmarshal decrypted puzzle: %w", err)
	}

	return p, nil
}

func (m *encryptionMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *encryptionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func decoyBoard() domain.Grid {
	g, _ := domain.NewGrid(domain.MinSize)
	return g
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	// Try active key first
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	// Try fallbacks in order
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	ciphertextBytes := ciphertext[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertextBytes, nil)
}
