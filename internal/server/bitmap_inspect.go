package server

import (
	"bytes"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"bsteg/api"
	"bsteg/internal/logging"
	"bsteg/pkg/bmp"
	"bsteg/pkg/steg"
)

// InspectBitmapHandler godoc
//
// @Summary Inspect a carrier bitmap
// @Description This endpoint returns the dimensions of the supplied bitmap and the payload size its embedded header declares. On a carrier nothing was embedded in, the declared size is meaningless
// @Tags bitmap
// @Accept json
// @Produce json
// @Param requestBody body api.InspectBitmapRequest true "Body with the carrier bitmap to inspect"
// @Success 200 {object} api.InspectBitmapResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /inspect/bitmap [post]
func InspectBitmapHandler(ctx *gin.Context) {
	var requestBody api.InspectBitmapRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing bitmap inspect request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	carrier, err := bmp.Decode(bytes.NewReader(requestBody.Carrier))
	if err != nil {
		logger.WithError(err).Error("Error decoding request carrier")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidCarrier)
		return
	}

	declaredSize, err := steg.NewStream(carrier).DeclaredPayloadSize()
	if err != nil {
		logger.WithError(err).Error("Error reading carrier header")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errCarrierTooSmall)
		return
	}

	ctx.JSON(http.StatusOK, api.InspectBitmapResponse{
		Width:                    carrier.Width(),
		Height:                   carrier.Height(),
		DeclaredPayloadSize:      declaredSize,
		DeclaredPayloadSizeHuman: humanize.Bytes(declaredSize),
	})
}
