package image

import (
	"bytes"
	"testing"

	"lsbsteg/pkg/config"
)

func TestHideWritesExpectedChannelBits(t *testing.T) {
	runImageTestsWithAllLSBSettings(t, hideAndCheckChannelBits)
}

func hideAndCheckChannelBits(t *testing.T, LSBsToUse byte) {
	const imageSize = 16

	img := generateImage(imageSize, imageSize)
	original := cloneImage(img)
	payload := generateRandomBytes(calculateBytesThatFitInImage(imageSize, imageSize, LSBsToUse) / 2)

	encoder, err := NewImageEncoder(img, config.ImageConfig{LSBsToUse: LSBsToUse})
	if err != nil {
		t.Fatalf("Error creating image encoder: %s", err)
	}
	if err = encoder.Hide(bytes.NewReader(payload), int64(len(payload))); err != nil {
		t.Fatalf("Error hiding payload with %d LSBs: %s", LSBsToUse, err)
	}

	expectedBits := expectedBitStream(payload, imageSize, imageSize, LSBsToUse)
	extractedBits := extractBitStream(img, LSBsToUse, len(expectedBits))
	for i, expected := range expectedBits {
		if extractedBits[i] != expected {
			t.Fatalf("Bit %d with %d LSBs: got %d, expected %d", i, LSBsToUse, extractedBits[i], expected)
		}
	}

	// Any padding bits in the channel the stream ends in must be zero, and
	// every channel past it must be untouched.
	lsbCount := int(LSBsToUse)
	channelsWritten := (len(expectedBits) + lsbCount - 1) / lsbCount
	for i := len(expectedBits); i < len(extractedBits); i++ {
		if extractedBits[i] != 0 {
			t.Fatalf("Padding bit %d with %d LSBs was %d, expected 0", i, LSBsToUse, extractedBits[i])
		}
	}
	for p := 0; p < imageSize*imageSize; p++ {
		offset := img.PixOffset(p%imageSize, p/imageSize)
		for c := 0; c < channelsPerPixel; c++ {
			if p*channelsPerPixel+c < channelsWritten {
				continue
			}
			if img.Pix[offset+c] != original.Pix[offset+c] {
				t.Fatalf("Channel %d past the written region was modified with %d LSBs", p*channelsPerPixel+c, LSBsToUse)
			}
		}
	}
}

func TestHideLeavesAlphaUntouched(t *testing.T) {
	const imageSize = 8

	img := generateImage(imageSize, imageSize)
	payload := generateRandomBytes(calculateBytesThatFitInImage(imageSize, imageSize, 8))

	encoder, err := NewImageEncoder(img, config.ImageConfig{LSBsToUse: 8})
	if err != nil {
		t.Fatalf("Error creating image encoder: %s", err)
	}
	if err = encoder.Hide(bytes.NewReader(payload), int64(len(payload))); err != nil {
		t.Fatalf("Error hiding payload: %s", err)
	}

	for p := 3; p < len(img.Pix); p += 4 {
		if img.Pix[p] != 255 {
			t.Fatalf("Alpha channel at offset %d was modified", p)
		}
	}
}

func TestHideCapacityExceeded(t *testing.T) {
	img := generateImage(2, 2)
	original := cloneImage(img)

	// 4 header bits + 16 payload bits = 20 > 12-bit capacity.
	payload := []byte{0xDE, 0xAD}
	encoder, err := NewImageEncoder(img, config.ImageConfig{LSBsToUse: 1})
	if err != nil {
		t.Fatalf("Error creating image encoder: %s", err)
	}

	err = encoder.Hide(bytes.NewReader(payload), int64(len(payload)))
	if err != ErrCapacityExceeded {
		t.Fatalf("Expected ErrCapacityExceeded, got %v", err)
	}
	if !bytes.Equal(img.Pix, original.Pix) {
		t.Error("Image was mutated before the capacity check failed")
	}
}

func TestNewImageEncoderRejectsInvalidLSBs(t *testing.T) {
	if _, err := NewImageEncoder(generateImage(2, 2), config.ImageConfig{LSBsToUse: 9}); err != config.ErrInvalidLSBsToUse {
		t.Errorf("Expected ErrInvalidLSBsToUse, got %v", err)
	}
}

func TestNewImageEncoderDefaultsLSBs(t *testing.T) {
	encoder, err := NewImageEncoder(generateImage(2, 2), config.ImageConfig{})
	if err != nil {
		t.Fatalf("Error creating image encoder: %s", err)
	}
	if encoder.config.LSBsToUse != config.DefaultLSBsToUse {
		t.Errorf("Expected default of %d LSBs, got %d", config.DefaultLSBsToUse, encoder.config.LSBsToUse)
	}
}
