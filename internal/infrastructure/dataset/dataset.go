// Package dataset reads emoji records in the emoji-datasource JSON layout.
package dataset

import (
	"bytes"
	"compress/gzip"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/logging"
)

// The built-in table covers every fully-qualified emoji of Unicode 15.1,
// with skin tone variants nested under their base record.
//
//go:embed data/emoji.json.gz
var embedded []byte

// ErrEmpty is returned when a dataset decodes to zero records.
var ErrEmpty = errors.New("dataset contains no records")

// Decode reads a JSON array of emoji records.
func Decode(r io.Reader) ([]entity.Emoji, error) {
	dec := json.NewDecoder(r)

	var records []entity.Emoji
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if dec.More() {
		return nil, errors.New("failed to decode dataset: trailing data after array")
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	for i, rec := range records {
		if rec.Unified == "" {
			return nil, fmt.Errorf("failed to decode dataset: record %d has no unified code points", i)
		}
	}
	return records, nil
}

// DecodeGzip reads a gzip-compressed JSON array of emoji records.
func DecodeGzip(r io.Reader) ([]entity.Emoji, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress dataset: %w", err)
	}
	defer func() { _ = zr.Close() }()
	return Decode(zr)
}

// LoadFile decodes the dataset at path. A ".gz" suffix selects gzip decoding.
func LoadFile(path string) ([]entity.Emoji, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	decode := Decode
	if strings.HasSuffix(path, ".gz") {
		decode = DecodeGzip
	}
	records, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Embedded decodes the dataset compiled into the binary.
func Embedded() ([]entity.Emoji, error) {
	return DecodeGzip(bytes.NewReader(embedded))
}

// Load returns the dataset at path, or the embedded one when path is empty.
func Load(ctx context.Context, path string) ([]entity.Emoji, error) {
	log := logging.FromContext(ctx)

	if path == "" {
		records, err := Embedded()
		if err != nil {
			return nil, err
		}
		log.Debug().Int("records", len(records)).Msg("embedded dataset loaded")
		return records, nil
	}

	records, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("records", len(records)).Msg("dataset loaded")
	return records, nil
}
