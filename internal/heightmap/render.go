package heightmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// GradientPoint pins a colour to an elevation.
type GradientPoint struct {
	Elevation float64
	Color     color.RGBA
}

// TerrainGradient colours deep water through sand and grass up to snow.
var TerrainGradient = []GradientPoint{
	{-1.0, colornames.Navy},
	{-0.25, colornames.Blue},
	{0.0, color.RGBA{0, 128, 255, 255}},
	{0.0625, color.RGBA{240, 240, 64, 255}},
	{0.125, color.RGBA{32, 160, 0, 255}},
	{0.375, color.RGBA{224, 224, 0, 255}},
	{0.75, colornames.Gray},
	{1.0, colornames.White},
}

// colorAt interpolates the gradient linearly, clamping at both ends.
func colorAt(gradient []GradientPoint, v float64) color.RGBA {
	if v <= gradient[0].Elevation {
		return gradient[0].Color
	}
	for i := 1; i < len(gradient); i++ {
		hi := gradient[i]
		if v > hi.Elevation {
			continue
		}
		lo := gradient[i-1]
		t := (v - lo.Elevation) / (hi.Elevation - lo.Elevation)
		mix := func(a, b uint8) uint8 {
			return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
		}
		return color.RGBA{mix(lo.Color.R, hi.Color.R), mix(lo.Color.G, hi.Color.G), mix(lo.Color.B, hi.Color.B), 255}
	}
	return gradient[len(gradient)-1].Color
}

// Image colours every sample with the terrain gradient. Row 0 of the map is
// the top row of the image.
func (m *Map) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			img.SetRGBA(x, y, colorAt(TerrainGradient, m.Value(x, y)))
		}
	}
	return img
}

// Render writes the map as a PNG, each sample upscaled to scale x scale
// pixels.
func (m *Map) Render(w io.Writer, scale int) error {
	if scale < 1 {
		return fmt.Errorf("heightmap: render scale %d must be at least 1", scale)
	}
	var img image.Image = m.Image()
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, m.Width*scale, m.Height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode heightmap png: %w", err)
	}
	return nil
}
