//go:build !unix

package oracle

// lockMemory is a no-op on platforms without mlock; the buffer is still
// zeroized on Release, it just carries no swap-avoidance guarantee.
func lockMemory(buf []byte) error { return nil }

func unlockMemory(buf []byte) error { return nil }
