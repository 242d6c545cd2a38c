//go:build unix

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

// WinSize queries the size of the terminal referenced by the given
// file. It falls back to 24x80 when the terminal reports zero, as
// serial consoles do, and to -1, -1 on error.
func WinSize(file *os.File) (row, col int) {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1
	}
	if ws.Col == 0 {
		ws.Col = 80
	}
	if ws.Row == 0 {
		ws.Row = 24
	}
	return int(ws.Row), int(ws.Col)
}
