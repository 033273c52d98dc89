package server

import "bsteg/api"

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidCarrier    = api.Error{Code: "invalid_carrier", Error: "Supplied carrier is not a valid uncompressed 24-bpp bitmap"}
	errCarrierTooSmall   = api.Error{Code: "carrier_too_small", Error: "Supplied carrier cannot hold the supplied payload"}
	errPayloadTooLarge   = api.Error{Code: "payload_too_large", Error: "Supplied payload length does not fit in the carrier header"}
	errEmbed             = api.Error{Code: "embed_error", Error: "An error occurred while embedding the payload"}
	errExtract           = api.Error{Code: "extract_error", Error: "An error occurred while extracting the payload"}
)
