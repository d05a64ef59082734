package config

import (
	"errors"
	"image/png"
)

const (
	DefaultLSBsToUse = 2
)

var (
	ErrInvalidLSBsToUse = errors.New("LSBs to use must be between 1 and 8")
)

// ImageConfig controls one hide or recover operation. The same LSBsToUse must
// be supplied on both sides, or recovery produces garbage.
type ImageConfig struct {
	LSBsToUse           byte
	PngCompressionLevel png.CompressionLevel
}

func (c ImageConfig) PopulateUnsetConfigVars() ImageConfig {
	if c.LSBsToUse == 0 {
		c.LSBsToUse = DefaultLSBsToUse
	}
	return c
}

func (c ImageConfig) Validate() error {
	if c.LSBsToUse < 1 || c.LSBsToUse > 8 {
		return ErrInvalidLSBsToUse
	}
	return nil
}
