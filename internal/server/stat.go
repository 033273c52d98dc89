package server

import (
	"bsteg/pkg/model"
)

type humanizedEmbedStats struct {
	model.EmbedStats
	CarrierDecodeHuman  string `json:"carrier_decode_human"`
	DataEmbeddingHuman  string `json:"data_embedding_human"`
	OutputEncodingHuman string `json:"output_encoding_human"`
}

type humanizedExtractStats struct {
	model.ExtractStats
	CarrierDecodeHuman  string `json:"carrier_decode_human"`
	DataExtractionHuman string `json:"data_extraction_human"`
}

func toHumanizedEmbedStats(embedStats model.EmbedStats) humanizedEmbedStats {
	return humanizedEmbedStats{
		EmbedStats:          embedStats,
		CarrierDecodeHuman:  embedStats.CarrierDecode.String(),
		DataEmbeddingHuman:  embedStats.DataEmbedding.String(),
		OutputEncodingHuman: embedStats.OutputEncoding.String(),
	}
}

func toHumanizedExtractStats(extractStats model.ExtractStats) humanizedExtractStats {
	return humanizedExtractStats{
		ExtractStats:        extractStats,
		CarrierDecodeHuman:  extractStats.CarrierDecode.String(),
		DataExtractionHuman: extractStats.DataExtraction.String(),
	}
}
