package api

import "bsteg/pkg/model"

type ExtractBitmapRequest struct {
	Carrier []byte `json:"carrier"`
}

type ExtractBitmapResponse struct {
	Payload []byte             `json:"payload"`
	Stats   model.ExtractStats `json:"stats"`
}
