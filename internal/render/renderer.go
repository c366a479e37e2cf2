// Package render turns payload text into scannable QR images.
package render

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 300

type Renderer struct {
	size int
}

func NewRenderer(size int) *Renderer {
	if size <= 0 {
		size = defaultSize
	}
	return &Renderer{size: size}
}

// PNG encodes the payload text as a PNG QR code with medium error correction.
func (r *Renderer) PNG(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, r.size)
}

// DataURI encodes the payload text as an inline data URI suitable for
// embedding directly in an <img> tag.
func (r *Renderer) DataURI(content string) (string, error) {
	png, err := r.PNG(content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
