package receipts

import (
	"encoding/base64"

	"github.com/gabriel-vasile/mimetype"
	"max.ks1230/smart-receipts/internal/clients/bedrock"
)

const defaultMediaType = "image/jpeg"

// media types the vision model accepts
var modelMediaTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// encodeImage base64-encodes raw bytes for the model. Unrecognised
// content is declared as JPEG.
func encodeImage(raw []byte) bedrock.Image {
	return bedrock.Image{
		MediaType: MediaType(raw),
		Data:      base64.StdEncoding.EncodeToString(raw),
	}
}

// MediaType sniffs an image type the model accepts, defaulting to JPEG.
func MediaType(raw []byte) string {
	detected := mimetype.Detect(raw)
	for _, mt := range modelMediaTypes {
		if detected.Is(mt) {
			return mt
		}
	}
	return defaultMediaType
}
