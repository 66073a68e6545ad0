// Package qrimage rasterizes KHQR payloads into scannable PNG images.
package qrimage

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// Renderer implements ports.QRRenderer using skip2/go-qrcode.
type Renderer struct {
	size int // output edge length in pixels
}

// NewRenderer creates a Renderer producing 256x256 PNGs.
func NewRenderer() *Renderer {
	return &Renderer{size: defaultSize}
}

// RenderPNG encodes the payload with medium error correction.
func (r *Renderer) RenderPNG(payload string) ([]byte, error) {
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("create qr code: %w", err)
	}
	png, err := qr.PNG(r.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return png, nil
}

// ToBase64 encodes PNG bytes for embedding in a JSON response.
func ToBase64(png []byte) string {
	return base64.StdEncoding.EncodeToString(png)
}
