package image

import (
	"bufio"
	"errors"
	"image"
	"io"
	"time"

	"lsbsteg/pkg/bits"
	"lsbsteg/pkg/config"
	"lsbsteg/pkg/model"
)

var (
	ErrRecoverOutOfBounds = errors.New("recovery exceeded image bounds, the image was likely not produced by lsbsteg or was hidden with a different LSB setting")
)

// Decoder extracts a payload previously hidden in an image's RGB channels.
// It must be configured with the same LSBsToUse that was used to hide; the
// setting is not embedded in the stream, matching the original layout, so a
// mismatch yields garbage rather than an explicit error.
type Decoder struct {
	image  *image.RGBA
	config config.ImageConfig
	stats  model.RecoverStats
}

func NewImageDecoder(img *image.RGBA, iConfig config.ImageConfig) (*Decoder, error) {
	iConfig = iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		return nil, err
	}

	return &Decoder{
		image:  img,
		config: iConfig,
	}, nil
}

func (d *Decoder) Stats() model.RecoverStats {
	return d.stats
}

// Recover reads the size header from the image, then streams exactly that
// many payload bytes to output. Returns the number of bytes written.
func (d *Decoder) Recover(output io.Writer) (int64, error) {
	recoverStart := time.Now()
	defer func() {
		d.stats.DataRecovery = time.Since(recoverStart)
	}()

	bounds := d.image.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	lsbCount := int(d.config.LSBsToUse)
	bitMask := byte(1<<lsbCount - 1)
	headerBits := HeaderBits(width, height, d.config.LSBsToUse)

	buf := bits.NewBuffer()
	walker := newPixelWalker(width, height)

	bufferPixel := func() bool {
		x, y, ok := walker.Next()
		if !ok {
			return false
		}
		offset := d.image.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
		for c := 0; c < channelsPerPixel; c++ {
			buf.PushBits(uint64(d.image.Pix[offset+c]&bitMask), lsbCount)
		}
		return true
	}

	for buf.Len() < headerBits {
		if !bufferPixel() {
			return 0, ErrRecoverOutOfBounds
		}
	}
	bytesToRecover := buf.PopBits(headerBits)

	// A size field that could never have been hidden in this image means the
	// header is garbage; bail out before walking pixels for it.
	if bytesToRecover > (MaxBits(width, height, d.config.LSBsToUse)-uint64(headerBits))/8 {
		return 0, ErrRecoverOutOfBounds
	}

	bufferedOutput := bufio.NewWriter(output)
	var bytesWritten int64
	for bytesToRecover > 0 {
		for buf.Len() >= 8 && bytesToRecover > 0 {
			if err := bufferedOutput.WriteByte(byte(buf.PopBits(8))); err != nil {
				return bytesWritten, err
			}
			bytesWritten++
			bytesToRecover--
		}
		if bytesToRecover == 0 {
			break
		}
		if !bufferPixel() {
			return bytesWritten, ErrRecoverOutOfBounds
		}
	}

	return bytesWritten, bufferedOutput.Flush()
}
