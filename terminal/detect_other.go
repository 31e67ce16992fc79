//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

func getTerminalSize(int) (int, int) {
	return 80, 24
}

func resetTerminalMode() {}
