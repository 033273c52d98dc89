package model

import (
	"time"
)

// StreamStats is measured by the embedding stream itself; the durations
// cover only the word-level transfer, not carrier decode/encode.
type StreamStats struct {
	DataEmbedding  time.Duration `json:"data_embedding"`
	DataExtraction time.Duration `json:"data_extraction"`
}

type EmbedStats struct {
	CarrierDecode  time.Duration `json:"carrier_decode"`
	DataEmbedding  time.Duration `json:"data_embedding"`
	OutputEncoding time.Duration `json:"output_encoding"`
}

type ExtractStats struct {
	CarrierDecode  time.Duration `json:"carrier_decode"`
	DataExtraction time.Duration `json:"data_extraction"`
}
