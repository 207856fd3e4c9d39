// Package render draws the two output images: the annotated camera
// frame and the synthetic model canvas built from landmark positions.
package render

import "image/color"

// Style collects every drawing constant the renderers use. Callers
// pass it explicitly; there are no package-level mutable defaults.
type Style struct {
	PoseColor      color.RGBA
	FaceColor      color.RGBA
	EyeColor       color.RGBA
	LipColor       color.RGBA
	LeftHandColor  color.RGBA
	RightHandColor color.RGBA

	GridColor   color.RGBA
	TextColor   color.RGBA
	HeaderColor color.RGBA
	AlertColor  color.RGBA
	DimColor    color.RGBA

	LineThickness int
	PointRadius   int
	GridSpacing   int

	FontScale      float64
	SmallFontScale float64
	LineSpacing    int
	OverlayMarginX int
	OverlayMarginY int
}

// DefaultStyle returns the standard drawing style.
func DefaultStyle() Style {
	return Style{
		PoseColor:      color.RGBA{R: 0, G: 255, B: 255, A: 255},
		FaceColor:      color.RGBA{R: 180, G: 180, B: 255, A: 255},
		EyeColor:       color.RGBA{R: 0, G: 255, B: 0, A: 255},
		LipColor:       color.RGBA{R: 255, G: 0, B: 128, A: 255},
		LeftHandColor:  color.RGBA{R: 255, G: 128, B: 0, A: 255},
		RightHandColor: color.RGBA{R: 255, G: 255, B: 0, A: 255},

		GridColor:   color.RGBA{R: 40, G: 40, B: 40, A: 255},
		TextColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		HeaderColor: color.RGBA{R: 0, G: 255, B: 255, A: 255},
		AlertColor:  color.RGBA{R: 0, G: 0, B: 255, A: 255},
		DimColor:    color.RGBA{R: 90, G: 90, B: 90, A: 255},

		LineThickness: 2,
		PointRadius:   2,
		GridSpacing:   30,

		FontScale:      1.0,
		SmallFontScale: 0.9,
		LineSpacing:    18,
		OverlayMarginX: 10,
		OverlayMarginY: 22,
	}
}
