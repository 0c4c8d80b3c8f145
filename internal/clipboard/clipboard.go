// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
// (pbcopy on macOS, xclip, xsel or wl-copy on Linux).
var ErrUnsupported = errors.New("no clipboard tool: install xclip, xsel or wl-clipboard")

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
