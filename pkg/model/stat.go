package model

import (
	"time"
)

type HideStats struct {
	Setup               time.Duration `json:"setup"`
	DataHiding          time.Duration `json:"data_hiding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
}

type RecoverStats struct {
	DataRecovery time.Duration `json:"data_recovery"`
}
