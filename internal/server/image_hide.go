package server

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"lsbsteg/api"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/config"
	stegimage "lsbsteg/pkg/image"
)

// HideImageHandler godoc
//
// @Summary Hide a payload inside the supplied image
// @Description This endpoint hides the supplied payload in the low bits of the image's color channels and returns the modified image as a PNG. Errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.HideImageRequest true "Body with the carrier image, the payload to hide and the LSB setting"
// @Success 200 {object} api.HideImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /hide/image [post]
func HideImageHandler(ctx *gin.Context) {
	var requestBody api.HideImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image hide request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	rgbaImg, err := rgbaImageFromBytes(requestBody.Image)
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	imageEncoder, err := stegimage.NewImageEncoder(rgbaImg, config.ImageConfig{
		LSBsToUse:           requestBody.LsbsToUse,
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
	})
	if err != nil {
		logger.WithError(err).Error("Error creating image encoder")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidLSBs)
		return
	}

	err = imageEncoder.Hide(bytes.NewReader(requestBody.Payload), int64(len(requestBody.Payload)))
	if err != nil {
		handleHideError(ctx, logger, err)
		return
	}

	stegImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.Image))) // pre allocate with size of original, since it should be similar
	if err = imageEncoder.WriteEncodedPNG(stegImageBuffer); err != nil {
		handleHideError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedHideStats(imageEncoder.Stats())).Info("Image hide was successful")

	ctx.JSON(http.StatusOK, api.HideImageResponse{StegImage: stegImageBuffer.Bytes()})
}

func handleHideError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error hiding payload in image")
	if errors.Is(err, stegimage.ErrCapacityExceeded) {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errCapacityExceeded)
		return
	}
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, errHide)
}

func rgbaImageFromBytes(imageBytes []byte) (*image.RGBA, error) {
	rawImage, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, err
	}

	rgbaImg := image.NewRGBA(rawImage.Bounds())
	draw.Draw(rgbaImg, rgbaImg.Bounds(), rawImage, rgbaImg.Bounds().Min, draw.Src)
	return rgbaImg, nil
}
