package port

import "context"

// Clipboard defines the port interface for clipboard operations.
type Clipboard interface {
	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error

	// ReadText reads text from the clipboard.
	ReadText(ctx context.Context) (string, error)
}
