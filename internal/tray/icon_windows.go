//go:build windows

package tray

import (
	"bytes"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

// encodeIcon encodes img as an ICO, the only format the Windows tray
// accepts.
func encodeIcon(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func placeholder() []byte {
	data, err := encodeIcon(image.NewNRGBA(image.Rect(0, 0, 16, 16)))
	if err != nil {
		return nil
	}
	return data
}
