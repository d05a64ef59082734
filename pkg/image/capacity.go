package image

import (
	mathbits "math/bits"
)

const (
	channelsPerPixel = 3
)

// MaxBits returns the number of bits an image of the given dimensions can
// carry when lsbsToUse low bits of each of its 3 color channels hold data.
func MaxBits(width, height int, lsbsToUse byte) uint64 {
	return uint64(channelsPerPixel) * uint64(width) * uint64(height) * uint64(lsbsToUse)
}

// HeaderBits returns the width in bits of the payload-size header: the
// smallest width that can represent any value up to the image's capacity.
// Hiding and recovery must both derive it from the same image dimensions and
// LSB setting, otherwise the recovered size field is garbage.
func HeaderBits(width, height int, lsbsToUse byte) int {
	return mathbits.Len64(MaxBits(width, height, lsbsToUse))
}
