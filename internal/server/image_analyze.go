package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lsbsteg/api"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/config"
	stegimage "lsbsteg/pkg/image"
)

// AnalyzeImageHandler godoc
//
// @Summary Report the carrying capacity of an image
// @Description This endpoint reports how many payload bytes an image of the given dimensions can carry at the given LSB setting, and whether a payload of the given size would fit. Pure computation, nothing is stored
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.AnalyzeImageRequest true "Body with image dimensions, LSB setting and optional payload size"
// @Success 200 {object} api.AnalyzeImageResponse
// @Failure 400 {object} api.Error
// @Router /analyze/image [post]
func AnalyzeImageHandler(ctx *gin.Context) {
	var requestBody api.AnalyzeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image analyze request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	if requestBody.Width <= 0 || requestBody.Height <= 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidDimensions)
		return
	}

	iConfig := config.ImageConfig{LSBsToUse: requestBody.LsbsToUse}.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidLSBs)
		return
	}

	report := stegimage.Analyze(requestBody.Width, requestBody.Height, iConfig.LSBsToUse, requestBody.PayloadSize)
	ctx.JSON(http.StatusOK, api.AnalyzeImageResponse{Report: report})
}
