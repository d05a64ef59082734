package api

import (
	"lsbsteg/pkg/model"
)

type HideImageRequest struct {
	LsbsToUse byte   `json:"lsbs_to_use"`
	Image     []byte `json:"image"`
	Payload   []byte `json:"payload"`
}

type HideImageResponse struct {
	StegImage []byte `json:"steg_image"`
}

type RecoverImageRequest struct {
	LsbsToUse byte   `json:"lsbs_to_use"`
	Image     []byte `json:"image"`
}

type RecoverImageResponse struct {
	Payload []byte `json:"payload"`
}

type AnalyzeImageRequest struct {
	LsbsToUse   byte  `json:"lsbs_to_use"`
	Width       int   `json:"width"`
	Height      int   `json:"height"`
	PayloadSize int64 `json:"payload_size"`
}

type AnalyzeImageResponse struct {
	Report model.Report `json:"report"`
}

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}
