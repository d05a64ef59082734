package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"

	"lsbsteg/api"
	"lsbsteg/api/fb"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/config"
	stegimage "lsbsteg/pkg/image"
)

// RecoverImageHandler godoc
//
// @Summary Recover the payload hidden in an image
// @Description This endpoint recovers the payload previously hidden in the supplied image. The LSB setting must match the one used when hiding. Errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.RecoverImageRequest true "Body with the steganographed image and the LSB setting"
// @Success 200 {object} api.RecoverImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /recover/image [post]
func RecoverImageHandler(ctx *gin.Context) {
	var requestBody api.RecoverImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image recover request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	payload, decoder, err := recoverPayload(requestBody.Image, requestBody.LsbsToUse)
	if err != nil {
		handleRecoverError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedRecoverStats(decoder.Stats())).Info("Image recovery was successful")

	ctx.JSON(http.StatusOK, api.RecoverImageResponse{Payload: payload})
}

func recoverPayload(imageBytes []byte, lsbsToUse byte) ([]byte, *stegimage.Decoder, error) {
	rgbaImg, err := rgbaImageFromBytes(imageBytes)
	if err != nil {
		return nil, nil, err
	}

	imageDecoder, err := stegimage.NewImageDecoder(rgbaImg, config.ImageConfig{LSBsToUse: lsbsToUse})
	if err != nil {
		return nil, nil, err
	}

	var payload bytes.Buffer
	if _, err = imageDecoder.Recover(&payload); err != nil {
		return nil, imageDecoder, err
	}
	return payload.Bytes(), imageDecoder, nil
}

func handleRecoverError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error recovering payload from image")
	switch err {
	case stegimage.ErrRecoverOutOfBounds:
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRecover)
	case config.ErrInvalidLSBsToUse:
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidLSBs)
	default:
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
	}
}

// handleBinaryRecoverRequest serves the flatbuffers octet-stream variant of
// the recover endpoint, for callers that want to skip base64 overhead.
func handleBinaryRecoverRequest(w http.ResponseWriter, r *http.Request) {
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error reading body", http.StatusInternalServerError)
		return
	}

	recoverRequest := fb.GetRootAsRecoverImageRequest(requestBody, 0)
	payload, _, err := recoverPayload(recoverRequest.ImageBytes(), recoverRequest.LsbsToUse())
	if err != nil {
		http.Error(w, "error recovering payload from image", http.StatusBadRequest)
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(payload))
	payloadOffset := fbResponseBuilder.CreateByteVector(payload)
	fb.RecoverImageResponseStart(fbResponseBuilder)
	fb.RecoverImageResponseAddPayload(fbResponseBuilder, payloadOffset)
	fbResponseBuilder.Finish(fb.RecoverImageResponseEnd(fbResponseBuilder))

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = w.Write(fbResponseBuilder.FinishedBytes()); err != nil {
		http.Error(w, "error writing response", http.StatusInternalServerError)
	}
}
