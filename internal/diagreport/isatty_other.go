//go:build !linux

package diagreport

import "os"

// IsTerminal always reports false off Linux; colour output is disabled
// rather than guessed at.
func IsTerminal(f *os.File) bool {
	return false
}
