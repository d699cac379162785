package svgdom

import (
	"fmt"

	"github.com/h2non/filetype"
)

// Image embeds a raster image, encoded by the caller, at a fixed
// placement rectangle in user space.
type Image struct {
	Data    []byte // raw encoded payload (PNG, JPEG or GIF)
	MIME    string
	ViewBox Rect // placement rectangle, in user space
}

// NewImage validates the encoded payload and places it at the
// translation part of `transform`, with the given display size.
// The payload format is sniffed from its magic bytes.
func NewImage(data []byte, transform Matrix2D, width, height float32) (*Image, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("svgdom: unreadable image payload: %w", err)
	}
	if kind == filetype.Unknown || !filetype.IsImage(data) {
		return nil, fmt.Errorf("svgdom: unsupported image payload")
	}
	viewBox, ok := RectFromXYWH(transform.E, transform.F, width, height)
	if !ok {
		return nil, BoundsError{
			MinX: transform.E - width/2, MaxX: transform.E + width/2,
			MinY: transform.F - height/2, MaxY: transform.F + height/2,
		}
	}
	return &Image{Data: data, MIME: kind.MIME.Value, ViewBox: viewBox}, nil
}

// LocalBounds returns the placement rectangle.
func (img *Image) LocalBounds() (Rect, bool) {
	return img.ViewBox, true
}
