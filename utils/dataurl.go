package utils

import (
	"encoding/base64"
	"net/http"
)

// DataURL embeds raw bytes as a base64 data URL, the representation the
// front end renders uploaded images from.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DetectImageMIME sniffs the content type of an uploaded image.
func DetectImageMIME(data []byte) string {
	return http.DetectContentType(data)
}
