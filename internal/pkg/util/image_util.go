package util

import (
	"bytes"
	"errors"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// ErrNotImage 无法解码为图片
var ErrNotImage = errors.New("file is not a decodable image")

// ProcessedImage 处理后的图片
type ProcessedImage struct {
	Data        []byte
	Width       int
	Height      int
	ContentType string
}

// ResizeImage 按最大宽度等比缩放并统一编码为 JPEG (PNG 保留透明通道)
func ResizeImage(r io.Reader, maxWidth int) (*ProcessedImage, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrNotImage
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrNotImage
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	outFormat, contentType := imaging.JPEG, "image/jpeg"
	if format == "png" {
		outFormat, contentType = imaging.PNG, "image/png"
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, outFormat, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}

	return &ProcessedImage{
		Data:        buf.Bytes(),
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ContentType: contentType,
	}, nil
}

// Extension 与 ContentType 对应的扩展名
func (p *ProcessedImage) Extension() string {
	if p.ContentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
