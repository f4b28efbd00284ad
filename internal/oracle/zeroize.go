package oracle

// Zeroize overwrites buf with zeros in place. Callers use it on the
// ephemeral secret-bearing buffers of spec.md §5's "Resource discipline" -
// ciphertexts and public keys are never passed to Zeroize. Not every
// secret-bearing value qualifies: a SecretKey's own fields (SLSS's s/e,
// the composite seed) must remain live for the lifetime of the key the
// caller holds, so KeyGen never zeroizes them. See DESIGN.md for the list
// of call sites that do zeroize their scratch buffers on exit and why the
// long-lived key fields deliberately don't.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// ZeroizeAll zeroizes every buffer passed to it, in order.
func ZeroizeAll(buffers ...[]byte) {
	for _, b := range buffers {
		Zeroize(b)
	}
}

// SecretBuffer is a byte buffer holding key material or other secret
// intermediate values. It is locked into physical memory for its lifetime
// (best effort, see zeroize_unix.go) so the operating system cannot swap
// it to disk, and it is zeroized and unlocked when Release is called.
//
// Acquire a SecretBuffer at the start of the scope that needs it and defer
// Release immediately, following the scoped-acquisition/guaranteed-release
// discipline spec.md §5 requires:
//
//	buf := oracle.NewSecretBuffer(n)
//	defer buf.Release()
type SecretBuffer struct {
	data   []byte
	locked bool
}

// NewSecretBuffer allocates an n-byte secret buffer and attempts to mlock
// it.
func NewSecretBuffer(n int) *SecretBuffer {
	b := &SecretBuffer{data: make([]byte, n)}
	b.locked = lockMemory(b.data) == nil
	return b
}

// Bytes returns the underlying buffer for the caller to fill or read.
func (b *SecretBuffer) Bytes() []byte {
	return b.data
}

// Release zeroizes and unlocks the buffer. It is safe to call more than
// once.
func (b *SecretBuffer) Release() {
	if b.data == nil {
		return
	}
	Zeroize(b.data)
	if b.locked {
		_ = unlockMemory(b.data)
		b.locked = false
	}
	b.data = nil
}
