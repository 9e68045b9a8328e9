// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/repository"
	"github.com/bnema/emojipick/internal/logging"
)

// DefaultHistoryKey is the storage key of the recently used list.
const DefaultHistoryKey = "emojipick:history"

// ErrHistoryCorrupt is returned when the stored history is not a valid JSON list.
var ErrHistoryCorrupt = errors.New("history data is corrupt")

// HistoryOptions configures ManageHistoryUseCase.
type HistoryOptions struct {
	// Key is the storage key. Empty means DefaultHistoryKey.
	Key string
	// MaxEntries trims the list after each record. Zero keeps everything.
	MaxEntries int
}

// ManageHistoryUseCase reads and updates the recently used emoji list.
// The list is stored as one JSON array of full dataset records, most recent first.
type ManageHistoryUseCase struct {
	store      repository.KeyValueStore
	key        string
	maxEntries int

	// mu serializes read-modify-write cycles so concurrent records are not lost.
	mu sync.Mutex
}

// NewManageHistoryUseCase creates a new history use case.
func NewManageHistoryUseCase(store repository.KeyValueStore, opts HistoryOptions) *ManageHistoryUseCase {
	key := opts.Key
	if key == "" {
		key = DefaultHistoryKey
	}
	maxEntries := opts.MaxEntries
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &ManageHistoryUseCase{
		store:      store,
		key:        key,
		maxEntries: maxEntries,
	}
}

// Key returns the storage key in use.
func (uc *ManageHistoryUseCase) Key() string {
	return uc.key
}

// Load returns the persisted history. A missing entry yields an empty list.
func (uc *ManageHistoryUseCase) Load(ctx context.Context) ([]entity.Emoji, error) {
	return uc.read(ctx)
}

// Record puts e at the front of the history, removing any earlier entry with
// the same code points, persists the result and returns it.
func (uc *ManageHistoryUseCase) Record(ctx context.Context, e entity.Emoji) ([]entity.Emoji, error) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.read(ctx)
	if err != nil {
		return nil, err
	}

	next := make([]entity.Emoji, 0, len(current)+1)
	next = append(next, e)
	for _, prev := range current {
		if !prev.SameAs(e) {
			next = append(next, prev)
		}
	}
	if uc.maxEntries > 0 && len(next) > uc.maxEntries {
		next = next[:uc.maxEntries]
	}

	data, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("failed to encode history: %w", err)
	}
	if err := uc.store.Set(ctx, uc.key, data); err != nil {
		return nil, fmt.Errorf("failed to save history: %w", err)
	}

	log.Debug().
		Str("unified", e.Unified).
		Int("entries", len(next)).
		Msg("history recorded")

	return next, nil
}

// Clear removes the persisted history.
func (uc *ManageHistoryUseCase) Clear(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.store.Delete(ctx, uc.key); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	logging.FromContext(ctx).Info().Str("key", uc.key).Msg("history cleared")
	return nil
}

func (uc *ManageHistoryUseCase) read(ctx context.Context) ([]entity.Emoji, error) {
	data, err := uc.store.Get(ctx, uc.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if len(data) == 0 {
		return []entity.Emoji{}, nil
	}

	var list []entity.Emoji
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistoryCorrupt, err)
	}
	if list == nil {
		list = []entity.Emoji{}
	}
	return list, nil
}
