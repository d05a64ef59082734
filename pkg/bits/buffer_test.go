package bits

import (
	"testing"
)

func TestPushPopRoundTrip(t *testing.T) {
	// 10000000 00000111 11111111 01100101
	bytesToBuffer := []byte{128, 7, 255, 101}

	for popWidth := 1; popWidth <= 8; popWidth++ {
		b := NewBuffer()

		var pushed, popped []byte
		for _, by := range bytesToBuffer {
			b.PushByte(by)
			for bit := 0; bit < 8; bit++ {
				pushed = append(pushed, (by>>bit)&1)
			}
		}

		for b.Len() > 0 {
			bitsLeft := b.Len()
			v := b.PopBits(popWidth)
			width := popWidth
			if bitsLeft < popWidth {
				width = bitsLeft
			}
			for bit := 0; bit < width; bit++ {
				popped = append(popped, byte((v>>bit)&1))
			}
		}

		if len(popped) != len(pushed) {
			t.Fatalf("Popped %d bits with width %d, expected %d", len(popped), popWidth, len(pushed))
		}
		for i := range pushed {
			if pushed[i] != popped[i] {
				t.Errorf("Bit %d mismatch with pop width %d: pushed %d, popped %d", i, popWidth, pushed[i], popped[i])
			}
		}
	}
}

func TestValueStaysWithinLength(t *testing.T) {
	b := NewBuffer()
	b.LoadBits(60000, 16)

	ops := []struct {
		push bool
		arg  uint64
		n    int
	}{
		{push: false, n: 3},
		{push: false, n: 3},
		{push: true, arg: 0xA5, n: 8},
		{push: false, n: 5},
		{push: true, arg: 0xFF, n: 8},
		{push: false, n: 8},
		{push: false, n: 8},
	}

	for i, op := range ops {
		if op.push {
			b.PushBits(op.arg, op.n)
		} else {
			b.PopBits(op.n)
		}
		if b.Len() < 0 {
			t.Fatalf("Negative length %d after op %d", b.Len(), i)
		}
		if b.Len() < 64 {
			if max := uint64(1) << b.Len(); b.value >= max {
				t.Errorf("After op %d value %d does not fit in %d bits", i, b.value, b.Len())
			}
		}
	}
}

func TestLoadBitsSetsExactWidth(t *testing.T) {
	b := NewBuffer()
	b.LoadBits(12, 16)

	if b.Len() != 16 {
		t.Fatalf("Expected length 16 after load, got %d", b.Len())
	}
	if v := b.PopBits(16); v != 12 {
		t.Errorf("Expected to pop 12, got %d", v)
	}
	if b.Len() != 0 {
		t.Errorf("Expected empty buffer after popping full width, length was %d", b.Len())
	}
}

func TestPopPadsShortBuffer(t *testing.T) {
	b := NewBuffer()
	b.PushBits(0b101, 3)

	if v := b.PopBits(8); v != 0b101 {
		t.Errorf("Expected zero-padded pop to return 5, got %d", v)
	}
	if b.Len() != 0 {
		t.Errorf("Expected empty buffer after padded pop, length was %d", b.Len())
	}
}

func TestDrainKeepsBufferedBits(t *testing.T) {
	b := NewBuffer()
	b.PushByte(0xC3)
	b.Drain()

	if !b.Drained() {
		t.Fatal("Expected buffer to report drained")
	}
	if v := b.PopBits(8); v != 0xC3 {
		t.Errorf("Expected buffered bits to survive drain, got %d", v)
	}

	b.Reset()
	if b.Drained() {
		t.Error("Expected reset to clear the drained state")
	}
	if b.Len() != 0 {
		t.Errorf("Expected reset to empty the buffer, length was %d", b.Len())
	}
}
