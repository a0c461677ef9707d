package main

import (
	"fmt"
	"image"
	"os"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// glyph atlas layout: one cell per rune 0..atlasCols*atlasRows-1
const (
	atlasCols = 16
	atlasRows = 8
)

// Atlas is an alpha image holding one fixed-size cell per ASCII glyph.
type Atlas struct {
	Image    *image.Alpha
	TileSize Size
}

func LoadFace(path string, size float64) (font.Face, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     96,
		Hinting: font.HintingFull,
	})
}

func RenderAtlas(face font.Face) (*Atlas, error) {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	tileHeight := metrics.Height.Ceil()
	if tileHeight == 0 {
		tileHeight = ascent + metrics.Descent.Ceil()
	}
	adv, ok := face.GlyphAdvance('m')
	if !ok {
		return nil, fmt.Errorf("font face does not provide a glyph for rune 'm'")
	}
	// monospace is assumed; wider glyphs are clipped by their neighbours
	tileWidth := adv.Ceil()
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("font face has empty metrics")
	}

	img := image.NewAlpha(image.Rect(0, 0, tileWidth*atlasCols, tileHeight*atlasRows))
	for i := range atlasCols * atlasRows {
		dot := fixed.Point26_6{
			X: fixed.I((i % atlasCols) * tileWidth),
			Y: fixed.I((i/atlasCols)*tileHeight + ascent),
		}
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(i))
		if !ok || mask == nil {
			continue
		}
		draw.Draw(img, dr, mask, maskp, draw.Src)
	}
	return &Atlas{
		Image:    img,
		TileSize: Size{X: tileWidth, Y: tileHeight},
	}, nil
}
