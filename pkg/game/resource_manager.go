package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/decker502/truckload/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LabelFontSize is the point size of the letter label before pulse scaling.
const LabelFontSize = 32.0

// ResourceManager owns the visual resources of the game: one truck image per
// palette variant and the font face used for letter labels.
//
// Truck images are generated from the configured palette the first time they
// are requested, so the manager can be created before the game loop starts.
//
// Thread Safety Note:
// Not thread-safe; it is only used from the Ebitengine game loop.
type ResourceManager struct {
	config      *config.GameConfig
	truckImages map[int]*ebiten.Image // variant -> image
	palette     []color.RGBA
	labelFace   *text.GoTextFace
}

// NewResourceManager creates a ResourceManager for the given game config.
//
// Returns an error if the palette cannot be parsed or the label font cannot be
// loaded.
func NewResourceManager(cfg *config.GameConfig) (*ResourceManager, error) {
	palette := make([]color.RGBA, 0, len(cfg.Trucks.Palette))
	for i, hex := range cfg.Trucks.Palette {
		c, err := config.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("truck palette[%d]: %w", i, err)
		}
		palette = append(palette, c)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to create label font source: %w", err)
	}

	return &ResourceManager{
		config:      cfg,
		truckImages: make(map[int]*ebiten.Image),
		palette:     palette,
		labelFace: &text.GoTextFace{
			Source:    source,
			Size:      LabelFontSize,
			Direction: text.DirectionLeftToRight,
		},
	}, nil
}

// LabelFace returns the font face for letter labels.
func (rm *ResourceManager) LabelFace() *text.GoTextFace {
	return rm.labelFace
}

// TruckImage returns the image for a truck variant, generating and caching it
// on first use. Out-of-range variants wrap around the palette.
func (rm *ResourceManager) TruckImage(variant int) *ebiten.Image {
	if len(rm.palette) == 0 {
		return nil
	}
	variant = ((variant % len(rm.palette)) + len(rm.palette)) % len(rm.palette)

	if img, ok := rm.truckImages[variant]; ok {
		return img
	}

	img := drawTruck(rm.config.Trucks.Width, rm.config.Trucks.Height, rm.palette[variant])
	rm.truckImages[variant] = img
	return img
}

// drawTruck renders a right-facing truck: cargo box, cab and two wheels.
func drawTruck(width, height float64, body color.RGBA) *ebiten.Image {
	w, h := float32(width), float32(height)
	img := ebiten.NewImage(int(width), int(height))

	cab := color.RGBA{R: body.R / 2, G: body.G / 2, B: body.B / 2, A: 0xff}
	glass := color.RGBA{R: 0xcf, G: 0xe8, B: 0xf5, A: 0xff}
	tyre := color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

	wheelR := h * 0.15

	// 货箱
	vector.DrawFilledRect(img, 0, 0, w*0.7, h-wheelR, body, false)
	// 车头
	vector.DrawFilledRect(img, w*0.72, h*0.3, w*0.28, h*0.7-wheelR, cab, false)
	vector.DrawFilledRect(img, w*0.8, h*0.36, w*0.15, h*0.18, glass, false)
	// 车轮
	vector.DrawFilledCircle(img, w*0.18, h-wheelR, wheelR, tyre, true)
	vector.DrawFilledCircle(img, w*0.85, h-wheelR, wheelR, tyre, true)

	return img
}
