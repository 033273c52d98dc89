package server

import (
	"bytes"
	"errors"
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

// EmbedBitmapHandler godoc
//
// @Summary Embed a payload into the supplied bitmap
// @Description This endpoint will embed the supplied payload into the low-order channel bits of the supplied 24-bpp bitmap, and return the modified bitmap. All errors are returned as JSON
// @Tags bitmap
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedBitmapRequest true "Body with the carrier bitmap and the payload to embed"
// @Success 200 {object} api.EmbedBitmapResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed/bitmap [post]
func EmbedBitmapHandler(ctx *gin.Context) {
	var requestBody api.EmbedBitmapRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing bitmap embed request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	encodedCarrier, stats, err := embedPayload(requestBody.Carrier, requestBody.Payload)
	if err != nil {
		logger.WithError(err).Error("Error embedding payload into carrier")
		ctx.AbortWithStatusJSON(embedErrorStatusAndBody(err))
		return
	}

	logger.With("stats", toHumanizedEmbedStats(stats)).Info("Bitmap embedding was successful")

	ctx.JSON(http.StatusOK, api.EmbedBitmapResponse{EncodedCarrier: encodedCarrier, Stats: stats})
}

func handleBitmapEmbedFB(w http.ResponseWriter, r *http.Request) {
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error reading body", http.StatusInternalServerError)
		return
	}

	embedRequest := Bitmap.GetRootAsEmbedRequest(requestBody, 0)
	encodedCarrier, _, err := embedPayload(embedRequest.CarrierBytes(), embedRequest.PayloadBytes())
	if err != nil {
		status, body := embedErrorStatusAndBody(err)
		http.Error(w, body.Error, status)
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedCarrier))
	offset := fbResponseBuilder.CreateByteVector(encodedCarrier)
	Bitmap.EmbedResponseStart(fbResponseBuilder)
	Bitmap.EmbedResponseAddCarrier(fbResponseBuilder, offset)
	response := Bitmap.EmbedResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = w.Write(fbResponseBuilder.FinishedBytes()); err != nil {
		http.Error(w, "error writing response", http.StatusInternalServerError)
	}
}

func embedPayload(carrierBytes, payload []byte) ([]byte, model.EmbedStats, error) {
	var stats model.EmbedStats

	decodeStart := time.Now()
	carrier, err := bmp.Decode(bytes.NewReader(carrierBytes))
	if err != nil {
		return nil, stats, err
	}
	stats.CarrierDecode = time.Since(decodeStart)

	stream := steg.NewStream(carrier)
	src := bits.NewReader(bytes.NewReader(payload), uint64(len(payload)))
	if err = stream.WriteStream(src); err != nil {
		return nil, stats, err
	}
	stats.DataEmbedding = stream.Stats().DataEmbedding

	encodeStart := time.Now()
	// Pre-allocate with the size of the original, the output is the same
	// size.
	encoded := bytes.NewBuffer(make([]byte, 0, len(carrierBytes)))
	if err = stream.IntoInner().(*bmp.Image).Encode(encoded); err != nil {
		return nil, stats, err
	}
	stats.OutputEncoding = time.Since(encodeStart)

	return encoded.Bytes(), stats, nil
}

func embedErrorStatusAndBody(err error) (int, api.Error) {
	switch {
	case isCarrierDecodeError(err):
		return http.StatusBadRequest, errInvalidCarrier
	case errors.Is(err, steg.ErrAddressOutOfRange):
		return http.StatusBadRequest, errCarrierTooSmall
	case errors.Is(err, steg.ErrPayloadTooLarge):
		return http.StatusBadRequest, errPayloadTooLarge
	default:
		return http.StatusInternalServerError, errEmbed
	}
}

func isCarrierDecodeError(err error) bool {
	return errors.Is(err, bmp.ErrInvalidMagic) ||
		errors.Is(err, bmp.ErrUnsupportedBPP) ||
		errors.Is(err, bmp.ErrUnsupportedCompression) ||
		errors.Is(err, bmp.ErrInvalidDimensions) ||
		errors.Is(err, bmp.ErrDimensionsTooLarge) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
