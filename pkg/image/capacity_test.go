package image

import (
	"testing"
)

func TestMaxBits(t *testing.T) {
	tests := []struct {
		width, height int
		LSBsToUse     byte
		expected      uint64
	}{
		{width: 100, height: 100, LSBsToUse: 2, expected: 60000},
		{width: 2, height: 2, LSBsToUse: 1, expected: 12},
		{width: 1, height: 1, LSBsToUse: 8, expected: 24},
		{width: 640, height: 480, LSBsToUse: 3, expected: 2764800},
		{width: 1920, height: 1080, LSBsToUse: 8, expected: 49766400},
	}

	for _, test := range tests {
		if got := MaxBits(test.width, test.height, test.LSBsToUse); got != test.expected {
			t.Errorf("MaxBits(%d, %d, %d) = %d, expected %d",
				test.width, test.height, test.LSBsToUse, got, test.expected)
		}
	}
}

func TestHeaderBits(t *testing.T) {
	tests := []struct {
		width, height int
		LSBsToUse     byte
		expected      int
	}{
		// capacity 60000: 2^16 = 65536 > 60000 >= 2^15
		{width: 100, height: 100, LSBsToUse: 2, expected: 16},
		// capacity 12: 2^4 = 16 > 12 >= 2^3
		{width: 2, height: 2, LSBsToUse: 1, expected: 4},
		// capacity 3
		{width: 1, height: 1, LSBsToUse: 1, expected: 2},
		// capacity 24
		{width: 1, height: 1, LSBsToUse: 8, expected: 5},
	}

	for _, test := range tests {
		if got := HeaderBits(test.width, test.height, test.LSBsToUse); got != test.expected {
			t.Errorf("HeaderBits(%d, %d, %d) = %d, expected %d",
				test.width, test.height, test.LSBsToUse, got, test.expected)
		}
	}
}

func TestHeaderBitsIsMinimalWidth(t *testing.T) {
	for _, dim := range []int{1, 2, 7, 100, 333, 1920} {
		for LSBsToUse := byte(1); LSBsToUse <= 8; LSBsToUse++ {
			capacity := MaxBits(dim, dim, LSBsToUse)
			headerBits := HeaderBits(dim, dim, LSBsToUse)
			if uint64(1)<<headerBits <= capacity {
				t.Errorf("Header of %d bits cannot represent capacity %d", headerBits, capacity)
			}
			if headerBits > 1 && uint64(1)<<(headerBits-1) > capacity {
				t.Errorf("Header of %d bits is wider than needed for capacity %d", headerBits, capacity)
			}
		}
	}
}
