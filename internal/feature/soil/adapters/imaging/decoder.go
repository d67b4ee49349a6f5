// Package imaging は標準のデコーダ登録を使った画像デコーダを提供します。
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"nethra_backend/internal/feature/soil/domain"
	"nethra_backend/internal/feature/soil/usecase"
)

// Decoder はJPEG/PNG/GIF/WebP/BMPをデコードします。
type Decoder struct{}

// DecoderがImageDecoderを実装していることをコンパイル時に検証します。
var _ usecase.ImageDecoder = Decoder{}

// NewDecoder はDecoderを生成します。
func NewDecoder() Decoder {
	return Decoder{}
}

// Decode は画像をデコードし、失敗した場合は domain.ErrDecode でラップします。
func (Decoder) Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: %s decoder returned no image", domain.ErrDecode, format)
	}
	return img, nil
}
