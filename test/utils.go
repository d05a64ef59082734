package test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateOpaquePNG returns the PNG encoding of a random fully opaque image.
func GenerateOpaquePNG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rand.Intn(256)),
				G: uint8(rand.Intn(256)),
				B: uint8(rand.Intn(256)),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
