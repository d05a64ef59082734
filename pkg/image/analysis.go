package image

import (
	"lsbsteg/pkg/model"
)

// Analyze reports the carrying capacity of an image at the given LSB setting
// and whether a payload of payloadSize bytes would fit. Pass a negative
// payloadSize when no payload is being considered. Pure function of its
// inputs; calling it twice yields identical reports.
func Analyze(width, height int, lsbsToUse byte, payloadSize int64) model.Report {
	capacityBits := MaxBits(width, height, lsbsToUse)
	headerBits := HeaderBits(width, height, lsbsToUse)

	report := model.Report{
		Width:            width,
		Height:           height,
		LSBsToUse:        lsbsToUse,
		CapacityBits:     capacityBits,
		CapacityBytes:    capacityBits / 8,
		HeaderSizeBits:   headerBits,
		HeaderSizeBytes:  (headerBits + 7) / 8,
		PayloadSizeBytes: payloadSize,
	}
	if payloadSize >= 0 {
		report.PayloadFits = uint64(headerBits)+8*uint64(payloadSize) <= capacityBits
	}

	return report
}
