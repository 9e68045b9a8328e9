// Package diskv stores history values as plain files, one per key.
package diskv

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bnema/emojipick/internal/domain/repository"
	"github.com/bnema/emojipick/internal/logging"
	"github.com/peterbourgon/diskv/v3"
	"golang.org/x/crypto/blake2b"
)

const cacheSizeMax = 1024 * 1024

type kvStore struct {
	d *diskv.Diskv
}

// Compile-time interface check.
var _ repository.KeyValueStore = (*kvStore)(nil)

// NewKeyValueStore creates a file-backed key-value store rooted at basePath.
func NewKeyValueStore(basePath string) (repository.KeyValueStore, error) {
	if basePath == "" {
		return nil, errors.New("diskv: base path cannot be empty")
	}
	return &kvStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, ".tmp"),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      cacheSizeMax,
		PathPerm:          0o750,
		FilePerm:          0o600,
	})}, nil
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("diskv: read %q: %w", key, err)
	}
	return val, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	logging.FromContext(ctx).Debug().Str("key", key).Int("bytes", len(value)).Msg("setting value")
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("diskv: write %q: %w", key, err)
	}
	return nil
}

func (s *kvStore) Delete(_ context.Context, key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("diskv: erase %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; every write is already on disk.
func (s *kvStore) Close() error {
	return nil
}

// keyToPathTransform hashes the key so arbitrary strings map to safe file
// names, fanned out under a two-character directory.
func keyToPathTransform(key string) *diskv.PathKey {
	sum := blake2b.Sum256([]byte(key))
	name := hex.EncodeToString(sum[:16])
	return &diskv.PathKey{
		Path:     []string{name[:2]},
		FileName: name,
	}
}

// pathToKeyTransform only recovers the hashed name. Keys are never enumerated.
func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
