// Package credential keeps the translation API key on disk in an obfuscated
// form and resolves which key a translation call should use.
//
// The passphrase typically ships with the configuration, so the file format
// keeps the key from being read at a glance; it is not a secret vault.
package credential

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32

	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1
)

var errCorrupt = errors.New("credential: stored value is corrupt or the passphrase changed")

// FileStore persists one credential in a single file.
type FileStore struct {
	path       string
	passphrase []byte
	minLength  int

	mu sync.Mutex
}

// NewFileStore creates a store at path. Set rejects keys shorter than minLength.
func NewFileStore(path, passphrase string, minLength int) *FileStore {
	return &FileStore{
		path:       path,
		passphrase: []byte(passphrase),
		minLength:  minLength,
	}
}

// Path returns the file the credential lives in.
func (s *FileStore) Path() string { return s.path }

// Get returns the stored credential.
// Returns domain.ErrNotFound if none has been set.
func (s *FileStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("credential: %w", domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("credential: read %s: %w", s.path, err)
	}

	return s.open(strings.TrimSpace(string(raw)))
}

// Set stores key, replacing any previous value.
func (s *FileStore) Set(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if len(key) < s.minLength {
		return domain.NewValidationError("credential", fmt.Sprintf("must be at least %d characters", s.minLength))
	}

	sealed, err := s.seal(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("credential: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credential-*")
	if err != nil {
		return fmt.Errorf("credential: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(sealed + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("credential: write: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("credential: chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("credential: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("credential: replace %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored credential. Clearing an empty store is not an error.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("credential: remove %s: %w", s.path, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Encoding: base64(salt | nonce | secretbox(key))
// ---------------------------------------------------------------------------

func (s *FileStore) seal(plain string) (string, error) {
	buf := make([]byte, saltSize+nonceSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("credential: random: %w", err)
	}

	key, err := s.derive(buf[:saltSize])
	if err != nil {
		return "", err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], buf[saltSize:])

	out := secretbox.Seal(buf, []byte(plain), &nonce, key)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (s *FileStore) open(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) < saltSize+nonceSize+secretbox.Overhead {
		return "", errCorrupt
	}

	key, err := s.derive(raw[:saltSize])
	if err != nil {
		return "", err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[saltSize:saltSize+nonceSize])

	plain, ok := secretbox.Open(nil, raw[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return "", errCorrupt
	}
	return string(plain), nil
}

func (s *FileStore) derive(salt []byte) (*[keySize]byte, error) {
	k, err := scrypt.Key(s.passphrase, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("credential: derive key: %w", err)
	}
	var key [keySize]byte
	copy(key[:], k)
	return &key, nil
}
