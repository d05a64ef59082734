package image

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"testing"
)

type testFunc func(t *testing.T, LSBsToUse byte)

func runImageTestsWithAllLSBSettings(t *testing.T, testFunc testFunc) {
	for LSBsToUse := byte(1); LSBsToUse <= 8; LSBsToUse++ {
		LSBsToUseCopy := LSBsToUse
		t.Run(fmt.Sprintf("LSBsToUse-%d", LSBsToUse), func(t *testing.T) {
			t.Parallel()
			testFunc(t, LSBsToUseCopy)
		})
	}
}

func generateImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: 255})
		}
	}
	return img
}

func cloneImage(img *image.RGBA) *image.RGBA {
	clone := image.NewRGBA(img.Bounds())
	copy(clone.Pix, img.Pix)
	return clone
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}

func generateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

func calculateBytesThatFitInImage(width, height int, LSBsToUse byte) int {
	return int((MaxBits(width, height, LSBsToUse) - uint64(HeaderBits(width, height, LSBsToUse))) / 8)
}

// expectedBitStream returns the exact bit sequence the encoder should place
// in the image channels: the payload size at header width, then the payload
// bytes, all oldest bit first.
func expectedBitStream(payload []byte, width, height int, LSBsToUse byte) []byte {
	var stream []byte
	stream = appendBits(stream, uint64(len(payload)), HeaderBits(width, height, LSBsToUse))
	for _, b := range payload {
		stream = appendBits(stream, uint64(b), 8)
	}
	return stream
}

func appendBits(dst []byte, v uint64, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, byte((v>>i)&1))
	}
	return dst
}

// extractBitStream reads numBits channel LSBs back out of the image in the
// same channel order the encoder writes them.
func extractBitStream(img *image.RGBA, LSBsToUse byte, numBits int) []byte {
	var stream []byte
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	for y := 0; y < height && len(stream) < numBits; y++ {
		for x := 0; x < width && len(stream) < numBits; x++ {
			offset := img.PixOffset(x, y)
			for c := 0; c < channelsPerPixel && len(stream) < numBits; c++ {
				stream = appendBits(stream, uint64(img.Pix[offset+c]), int(LSBsToUse))
			}
		}
	}
	return stream
}

func imageFromPNGBytes(t *testing.T, pngBytes []byte) *image.RGBA {
	t.Helper()
	decoded, _, err := image.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("Error decoding PNG produced by encoder: %s", err)
	}
	img := image.NewRGBA(decoded.Bounds())
	draw.Draw(img, img.Bounds(), decoded, img.Bounds().Min, draw.Src)
	return img
}
