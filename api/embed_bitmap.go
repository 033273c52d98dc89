package api

import "bsteg/pkg/model"

type EmbedBitmapRequest struct {
	Carrier []byte `json:"carrier"`
	Payload []byte `json:"payload"`
}

type EmbedBitmapResponse struct {
	EncodedCarrier []byte           `json:"encoded_carrier"`
	Stats          model.EmbedStats `json:"stats"`
}
