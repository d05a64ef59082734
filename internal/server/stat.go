package server

import (
	"lsbsteg/pkg/model"
)

type humanizedHideStats struct {
	model.HideStats
	SetupHuman               string `json:"setup_human"`
	DataHidingHuman          string `json:"data_hiding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
}

type humanizedRecoverStats struct {
	model.RecoverStats
	DataRecoveryHuman string `json:"data_recovery_human"`
}

func toHumanizedHideStats(hideStats model.HideStats) humanizedHideStats {
	return humanizedHideStats{
		HideStats:                hideStats,
		SetupHuman:               hideStats.Setup.String(),
		DataHidingHuman:          hideStats.DataHiding.String(),
		OutputImageEncodingHuman: hideStats.OutputImageEncoding.String(),
	}
}

func toHumanizedRecoverStats(recoverStats model.RecoverStats) humanizedRecoverStats {
	return humanizedRecoverStats{
		RecoverStats:      recoverStats,
		DataRecoveryHuman: recoverStats.DataRecovery.String(),
	}
}
