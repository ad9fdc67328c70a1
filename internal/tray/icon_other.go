//go:build !windows

package tray

import (
	"image"

	"desktop-clock/internal/clockface"
)

func encodeIcon(img image.Image) ([]byte, error) {
	return clockface.EncodePNG(img)
}

func placeholder() []byte {
	data, err := encodeIcon(image.NewNRGBA(image.Rect(0, 0, 16, 16)))
	if err != nil {
		return nil
	}
	return data
}
