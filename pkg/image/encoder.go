package image

import (
	"bufio"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"time"

	"lsbsteg/pkg/bits"
	"lsbsteg/pkg/config"
	"lsbsteg/pkg/model"
)

var (
	ErrCapacityExceeded = errors.New("payload plus size header exceed image capacity, either choose a bigger image or increase LSBs to use")
)

func init() {
	image.RegisterFormat("jpeg", "jpeg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("jpg", "jpg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "png", png.Decode, png.DecodeConfig)
}

// Encoder hides a payload in the low bits of an image's RGB channels. The
// embedded stream starts with the payload size in a header whose width is
// derived from the image's own capacity, followed by the payload bytes.
type Encoder struct {
	image  *image.RGBA
	config config.ImageConfig
	stats  model.HideStats
}

func NewImageEncoder(img *image.RGBA, iConfig config.ImageConfig) (*Encoder, error) {
	iConfig = iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		return nil, err
	}

	return &Encoder{
		image:  img,
		config: iConfig,
	}, nil
}

func (e *Encoder) Stats() model.HideStats {
	return e.stats
}

// Hide embeds payloadSize bytes read from payload into the image, mutating it
// in place. The capacity check runs before any pixel is touched, so a
// too-large payload fails fast instead of being silently truncated.
func (e *Encoder) Hide(payload io.Reader, payloadSize int64) error {
	setupStart := time.Now()

	bounds := e.image.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	lsbCount := int(e.config.LSBsToUse)

	headerBits := HeaderBits(width, height, e.config.LSBsToUse)
	if uint64(headerBits)+8*uint64(payloadSize) > MaxBits(width, height, e.config.LSBsToUse) {
		return ErrCapacityExceeded
	}

	buf := bits.NewBuffer()
	buf.LoadBits(uint64(payloadSize), headerBits)
	payloadReader := bufio.NewReader(payload)
	e.stats.Setup = time.Since(setupStart)

	hideStart := time.Now()
	defer func() {
		e.stats.DataHiding = time.Since(hideStart)
	}()

	clearMask := byte(0xFF) << lsbCount
	walker := newPixelWalker(width, height)
	for {
		x, y, ok := walker.Next()
		if !ok {
			return nil
		}

		offset := e.image.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
		for c := 0; c < channelsPerPixel; c++ {
			if buf.Len() < lsbCount && !buf.Drained() {
				by, err := payloadReader.ReadByte()
				switch {
				case err == io.EOF:
					buf.Drain()
				case err != nil:
					return err
				default:
					buf.PushByte(by)
				}
			}
			if buf.Drained() && buf.Len() == 0 {
				return nil
			}

			// Clear the low bits of the channel and replace them with the
			// oldest buffered bits. A sub-width tail at the end of the stream
			// comes out of PopBits zero-padded, so no payload bits are lost.
			e.image.Pix[offset+c] = e.image.Pix[offset+c]&clearMask | byte(buf.PopBits(lsbCount))
		}
	}
}

// WriteEncodedPNG persists the modified image. PNG is the only output format
// on purpose: the embedded bits do not survive lossy recompression.
func (e *Encoder) WriteEncodedPNG(output io.Writer) error {
	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()

	enc := png.Encoder{CompressionLevel: e.config.PngCompressionLevel}
	return enc.Encode(output, e.image)
}
