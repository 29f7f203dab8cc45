package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"

	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"
)

// ErrInvalidSize is returned for a non-positive scale or image size.
var ErrInvalidSize = errors.New("export: scale and size must be positive")

// Render replays the committed entities of list onto a fresh width x height
// image, scaling geometry and sizes by scale. Callers that may keep mutating
// the list should pass a Snapshot.
func Render(list *state.DisplayList, scale float64, width, height int, background color.Color) (*image.RGBA, error) {
	if scale <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: scale=%g size=%dx%d", ErrInvalidSize, scale, width, height)
	}
	r := surface.NewRaster(width, height, background)
	list.Paint(surface.Scale(r, scale))
	return r.Image(), nil
}

// WritePNG renders list and encodes it to w.
func WritePNG(w io.Writer, list *state.DisplayList, scale float64, width, height int, background color.Color) error {
	img, err := Render(list, scale, width, height, background)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Printf("[EXPORT] Wrote %d entities at x%g into %dx%d", list.Len(), scale, width, height)
	return nil
}

// Raster returns the PNG bytes of list.
func Raster(list *state.DisplayList, scale float64, width, height int, background color.Color) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, list, scale, width, height, background); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
