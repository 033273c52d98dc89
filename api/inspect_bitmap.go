package api

type InspectBitmapRequest struct {
	Carrier []byte `json:"carrier"`
}

type InspectBitmapResponse struct {
	Width                    uint32 `json:"width"`
	Height                   uint32 `json:"height"`
	DeclaredPayloadSize      uint64 `json:"declared_payload_size"`
	DeclaredPayloadSizeHuman string `json:"declared_payload_size_human"`
}
