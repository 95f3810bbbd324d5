// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard mechanism can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the platform clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows clipboard API).
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Available reports whether the platform clipboard can be used.
func Available() bool {
	return !clipboard.Unsupported
}

// ManualCommand returns a shell command the user can run to copy the file at
// path by hand on the current platform.
func ManualCommand(path string) string {
	return manualCommand(runtime.GOOS, path)
}

func manualCommand(goos, path string) string {
	switch goos {
	case "darwin":
		return fmt.Sprintf("cat %s | pbcopy", path)
	case "windows":
		return fmt.Sprintf("type %s | clip", path)
	default:
		return fmt.Sprintf("xclip -selection clipboard < %s", path)
	}
}
