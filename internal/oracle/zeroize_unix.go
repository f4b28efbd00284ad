//go:build unix

package oracle

import "golang.org/x/sys/unix"

// lockMemory pins buf's pages so the kernel will not swap them out while
// they hold secret material. Best effort: failure (e.g. insufficient
// RLIMIT_MEMLOCK) is not fatal, it just means the buffer is still
// zeroized on Release but was never guaranteed to avoid swap.
func lockMemory(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Mlock(buf)
}

// unlockMemory reverses lockMemory.
func unlockMemory(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Munlock(buf)
}
