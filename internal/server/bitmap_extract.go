package server

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"

	"bsteg/api"
	"bsteg/api/bsteg/Bitmap"
	"bsteg/internal/logging"
	"bsteg/pkg/bits"
	"bsteg/pkg/bmp"
	"bsteg/pkg/model"
	"bsteg/pkg/steg"
)

// ExtractBitmapHandler godoc
//
// @Summary Extract the payload embedded in the supplied bitmap
// @Description This endpoint will extract the payload previously embedded in the supplied bitmap and return it. All errors are returned as JSON
// @Tags bitmap
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractBitmapRequest true "Body with the carrier bitmap to extract from"
// @Success 200 {object} api.ExtractBitmapResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /extract/bitmap [post]
func ExtractBitmapHandler(ctx *gin.Context) {
	var requestBody api.ExtractBitmapRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing bitmap extract request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	payload, stats, err := extractPayload(requestBody.Carrier)
	if err != nil {
		logger.WithError(err).Error("Error extracting payload from carrier")
		ctx.AbortWithStatusJSON(extractErrorStatusAndBody(err))
		return
	}

	logger.With("stats", toHumanizedExtractStats(stats)).Info("Bitmap extraction was successful")

	ctx.JSON(http.StatusOK, api.ExtractBitmapResponse{Payload: payload, Stats: stats})
}

func handleBitmapExtractFB(w http.ResponseWriter, r *http.Request) {
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error reading body", http.StatusInternalServerError)
		return
	}

	extractRequest := Bitmap.GetRootAsExtractRequest(requestBody, 0)
	payload, _, err := extractPayload(extractRequest.CarrierBytes())
	if err != nil {
		status, body := extractErrorStatusAndBody(err)
		http.Error(w, body.Error, status)
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(payload))
	offset := fbResponseBuilder.CreateByteVector(payload)
	Bitmap.ExtractResponseStart(fbResponseBuilder)
	Bitmap.ExtractResponseAddPayload(fbResponseBuilder, offset)
	response := Bitmap.ExtractResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = w.Write(fbResponseBuilder.FinishedBytes()); err != nil {
		http.Error(w, "error writing response", http.StatusInternalServerError)
	}
}

func extractPayload(carrierBytes []byte) ([]byte, model.ExtractStats, error) {
	var stats model.ExtractStats

	decodeStart := time.Now()
	carrier, err := bmp.Decode(bytes.NewReader(carrierBytes))
	if err != nil {
		return nil, stats, err
	}
	stats.CarrierDecode = time.Since(decodeStart)

	stream := steg.NewStream(carrier)
	var payload bytes.Buffer
	sink := bits.NewWriter(&payload)
	if err = stream.ReadStream(sink); err != nil {
		return nil, stats, err
	}
	if err = sink.Close(); err != nil {
		return nil, stats, err
	}
	stats.DataExtraction = stream.Stats().DataExtraction

	return payload.Bytes(), stats, nil
}

func extractErrorStatusAndBody(err error) (int, api.Error) {
	switch {
	case isCarrierDecodeError(err):
		return http.StatusBadRequest, errInvalidCarrier
	default:
		return http.StatusInternalServerError, errExtract
	}
}
