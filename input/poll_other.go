//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package input

import "os"

// NewStdinSource falls back to a blocking stream where poll(2) is unavailable
func NewStdinSource() LineSource {
	return NewStreamSource(os.Stdin)
}
