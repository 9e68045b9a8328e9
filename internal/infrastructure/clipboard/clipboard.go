// Package clipboard copies selected glyphs to the system clipboard.
// The platform tool (wl-copy, xclip, xsel, pbcopy, ...) is chosen by atotto/clipboard.
package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/bnema/emojipick/internal/application/port"
	"github.com/bnema/emojipick/internal/logging"
)

// ErrUnsupported is returned when no clipboard tool is installed.
var ErrUnsupported = errors.New("no clipboard tool available (install wl-clipboard, xclip or xsel)")

// Adapter implements port.Clipboard on top of atotto/clipboard.
type Adapter struct{}

// Compile-time interface check.
var _ port.Clipboard = (*Adapter)(nil)

// New creates a new clipboard adapter.
func New() *Adapter {
	return &Adapter{}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if clipboard.Unsupported {
		log.Error().Err(ErrUnsupported).Msg("clipboard write failed")
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Error().Err(err).Msg("clipboard write failed")
		return err
	}

	log.Debug().Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// ReadText reads text from the clipboard.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("clipboard read failed")
		return "", err
	}
	return text, nil
}
