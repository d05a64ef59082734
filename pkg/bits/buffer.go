package bits

// Buffer is a variable-width bit queue that bridges byte-oriented I/O and
// fixed-width bit groups. Bits are appended at the high end and consumed from
// the low end, so the oldest pushed bits come out first. The buffer holds at
// most 64 bits; callers are expected to interleave pushes and pops so the
// length stays within that bound.
type Buffer struct {
	value   uint64
	length  int
	drained bool
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Reset returns the buffer to its initial empty, undrained state.
func (b *Buffer) Reset() {
	b.value = 0
	b.length = 0
	b.drained = false
}

// Len returns the number of bits currently buffered.
func (b *Buffer) Len() int {
	return b.length
}

// Drain marks the byte source feeding this buffer as exhausted. Bits already
// buffered remain readable.
func (b *Buffer) Drain() {
	b.drained = true
}

// Drained reports whether the byte source feeding this buffer is exhausted.
func (b *Buffer) Drained() bool {
	return b.drained
}

// PushByte appends all 8 bits of by at the high end of the buffer.
func (b *Buffer) PushByte(by byte) {
	b.PushBits(uint64(by), 8)
}

// PushBits appends the low n bits of v at the high end of the buffer.
func (b *Buffer) PushBits(v uint64, n int) {
	b.value |= (v & (1<<n - 1)) << b.length
	b.length += n
}

// LoadBits seeds the buffer with v occupying exactly n bits. Used to place the
// payload-size header at the front of the bit stream, where the header width
// is dictated by the image capacity rather than by v itself.
func (b *Buffer) LoadBits(v uint64, n int) {
	b.value = v
	b.length = n
}

// PopBits removes and returns the n lowest (oldest) bits. If fewer than n bits
// are buffered, the remainder is returned zero-padded at the high end and the
// buffer is left empty.
func (b *Buffer) PopBits(n int) uint64 {
	if n >= b.length {
		v := b.value
		b.value = 0
		b.length = 0
		return v
	}
	v := b.value & (1<<n - 1)
	b.value >>= n
	b.length -= n
	return v
}
