package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/emojipick/internal/application/port"
	"github.com/bnema/emojipick/internal/logging"
)

// ErrClipboardUnavailable is returned when no clipboard was configured.
var ErrClipboardUnavailable = errors.New("clipboard not available")

// CopyGlyphUseCase copies selected glyphs to the system clipboard.
type CopyGlyphUseCase struct {
	clipboard port.Clipboard
}

// NewCopyGlyphUseCase creates a new CopyGlyphUseCase.
func NewCopyGlyphUseCase(clipboard port.Clipboard) *CopyGlyphUseCase {
	return &CopyGlyphUseCase{
		clipboard: clipboard,
	}
}

// Copy copies glyph to the clipboard.
func (uc *CopyGlyphUseCase) Copy(ctx context.Context, glyph string) error {
	log := logging.FromContext(ctx)

	if glyph == "" {
		log.Debug().Msg("copy glyph: empty glyph")
		return fmt.Errorf("empty glyph")
	}

	if uc == nil || uc.clipboard == nil {
		log.Warn().Msg("copy glyph: clipboard is nil")
		return ErrClipboardUnavailable
	}

	if err := uc.clipboard.WriteText(ctx, glyph); err != nil {
		log.Error().Err(err).Str("glyph", glyph).Msg("copy glyph: clipboard write failed")
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	log.Debug().Str("glyph", glyph).Msg("glyph copied to clipboard")
	return nil
}
