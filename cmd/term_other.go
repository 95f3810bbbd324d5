//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package cmd

// terminalWidth is unknown on this platform; callers fall back to a fixed width.
func terminalWidth() int {
	return 0
}
