// Package sys provides the small set of terminal facilities the tui
// backend needs, with the same API across OSes.
package sys

import "github.com/mattn/go-isatty"

// IsATTY determines whether the given file descriptor is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
