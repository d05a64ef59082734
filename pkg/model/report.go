package model

// Report describes how much data an image can carry at a given LSB setting.
// PayloadSizeBytes is -1 when no payload was supplied for analysis.
type Report struct {
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	LSBsToUse        byte   `json:"lsbs_to_use"`
	CapacityBits     uint64 `json:"capacity_bits"`
	CapacityBytes    uint64 `json:"capacity_bytes"`
	HeaderSizeBits   int    `json:"header_size_bits"`
	HeaderSizeBytes  int    `json:"header_size_bytes"`
	PayloadSizeBytes int64  `json:"payload_size_bytes"`
	PayloadFits      bool   `json:"payload_fits"`
}
