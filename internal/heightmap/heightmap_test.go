package heightmap

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/lucashuguet/goatland/internal/noise"
)

func planeFactory() (noise.Source, error) {
	return noise.SourceFunc(func(x, y, _ float64) float64 { return x*10 + y }), nil
}

func TestBuildSamplesGrid(t *testing.T) {
	b := NewBuilder()
	b.Width, b.Height = 4, 2
	m, err := b.Build(context.Background(), planeFactory)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// x steps by 0.5 from -1, y steps by 1 from -1
	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, -11},
		{1, 0, -6},
		{3, 0, 4},
		{0, 1, -10},
		{3, 1, 5},
	}
	for _, tt := range tests {
		if got := m.Value(tt.x, tt.y); got != tt.want {
			t.Errorf("Value(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if got := m.Value(4, 0); got != 0 {
		t.Errorf("out of range value = %v, want 0", got)
	}
	if lo, hi := m.Bounds(); lo != -11 || hi != 5 {
		t.Errorf("Bounds = (%v,%v), want (-11,5)", lo, hi)
	}
}

func TestBuildIndependentOfWorkerCount(t *testing.T) {
	factory := func() (noise.Source, error) {
		return noise.NewFbm(noise.Fractal(4))
	}
	b := NewBuilder()
	b.Width, b.Height = 17, 13
	b.Workers = 1
	serial, err := b.Build(context.Background(), factory)
	if err != nil {
		t.Fatalf("serial Build: %v", err)
	}
	b.Workers = 5
	parallel, err := b.Build(context.Background(), factory)
	if err != nil {
		t.Fatalf("parallel Build: %v", err)
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if serial.Value(x, y) != parallel.Value(x, y) {
				t.Fatalf("(%d,%d): %v != %v", x, y, serial.Value(x, y), parallel.Value(x, y))
			}
		}
	}
}

func TestBuildPropagatesFactoryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewBuilder().Build(context.Background(), func() (noise.Source, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped boom", err)
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewBuilder().Build(ctx, planeFactory); err == nil {
		t.Fatalf("cancelled build succeeded")
	}
}

func TestBuilderValidate(t *testing.T) {
	bad := []Builder{
		{Width: 0, Height: 10, XBounds: [2]float64{-1, 1}, YBounds: [2]float64{-1, 1}},
		{Width: 10, Height: 10, XBounds: [2]float64{1, -1}, YBounds: [2]float64{-1, 1}},
		{Width: 10, Height: 10, XBounds: [2]float64{-1, 1}, YBounds: [2]float64{-1, 1}, Workers: -1},
	}
	for i, b := range bad {
		if err := b.Validate(); err == nil {
			t.Errorf("case %d: invalid builder accepted", i)
		}
	}
}

func TestPlanetFixture(t *testing.T) {
	factory := func() (noise.Source, error) {
		return noise.BuildPlanet(noise.DefaultPlanetParams(0))
	}
	b := NewBuilder()
	// The first two cells and the centre of the default 100x100 map.
	b.Width, b.Height = 100, 1
	m, err := b.Build(context.Background(), factory)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tests := []struct {
		x    int
		want float64
	}{
		{0, -0.5616332776211587},
		{1, -0.6312488961923269},
	}
	for _, tt := range tests {
		if got := m.Value(tt.x, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("planet cell (%d,0) = %.17g, want %.17g", tt.x, got, tt.want)
		}
	}

	src, _ := factory()
	if got, want := src.Sample(0, 0, 0), -0.35497663158400616; math.Abs(got-want) > 1e-9 {
		t.Errorf("planet(0,0,0) = %.17g, want %.17g", got, want)
	}
}

func TestRenderPNG(t *testing.T) {
	b := NewBuilder()
	b.Width, b.Height = 8, 6
	m, err := b.Build(context.Background(), planeFactory)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var buf bytes.Buffer
	if err := m.Render(&buf, 3); err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 24 || got.Y != 18 {
		t.Fatalf("image size = %v, want 24x18", got)
	}
	if err := m.Render(&buf, 0); err == nil {
		t.Fatalf("scale 0 accepted")
	}
}

func TestColorAtClampsAndInterpolates(t *testing.T) {
	if got := colorAt(TerrainGradient, -5); got != TerrainGradient[0].Color {
		t.Errorf("below range = %v", got)
	}
	if got := colorAt(TerrainGradient, 5); got != TerrainGradient[len(TerrainGradient)-1].Color {
		t.Errorf("above range = %v", got)
	}
	mid := colorAt(TerrainGradient, 0.875) // halfway between rock and snow
	if mid.R != 192 || mid.G != 192 || mid.B != 192 {
		t.Errorf("mid rock/snow = %v, want 192 grey", mid)
	}
}
