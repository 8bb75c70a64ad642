package contact

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable means the environment has no clipboard to write to.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard is a write-only text clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes to the OS clipboard (xclip/xsel/wl-copy, pbcopy, or the
// Windows API, whichever the platform has).
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (fn ClipboardFunc) WriteText(text string) error { return fn(text) }
