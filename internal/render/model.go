package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/natyam/internal/detector"
)

// ModelRenderer composes the digital model canvas: a fresh black
// image per call carrying only landmark-derived drawing, never camera
// pixels.
type ModelRenderer struct {
	style  Style
	width  int
	height int
}

// NewModelRenderer creates a ModelRenderer producing canvases of the
// given size.
func NewModelRenderer(width, height int, style Style) *ModelRenderer {
	return &ModelRenderer{
		style:  style,
		width:  width,
		height: height,
	}
}

// Render builds the model canvas for one frame's detection results.
// The caller owns the returned Mat and must close it.
func (r *ModelRenderer) Render(subjects Subjects) gocv.Mat {
	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), r.height, r.width, gocv.MatTypeCV8UC3)

	r.drawGrid(&canvas)

	if subjects.Pose.Len() > 0 {
		r.drawConnections(&canvas, subjects.Pose, poseConnections, r.style.PoseColor, r.style.LineThickness)
		r.drawPoints(&canvas, subjects.Pose, r.style.PoseColor, r.style.PointRadius+1)
	}

	if subjects.Face.Len() > 0 {
		r.drawConnections(&canvas, subjects.Face, faceOval, r.style.FaceColor, 1)
		r.drawConnections(&canvas, subjects.Face, leftEyebrow, r.style.FaceColor, 1)
		r.drawConnections(&canvas, subjects.Face, rightEyebrow, r.style.FaceColor, 1)
		r.drawConnections(&canvas, subjects.Face, leftEye, r.style.EyeColor, 1)
		r.drawConnections(&canvas, subjects.Face, rightEye, r.style.EyeColor, 1)
		r.drawConnections(&canvas, subjects.Face, lips, r.style.LipColor, 1)
	}

	if subjects.LeftHand.Len() > 0 {
		r.drawConnections(&canvas, subjects.LeftHand, handConnections, r.style.LeftHandColor, r.style.LineThickness)
		r.drawPoints(&canvas, subjects.LeftHand, r.style.LeftHandColor, r.style.PointRadius)
	}
	if subjects.RightHand.Len() > 0 {
		r.drawConnections(&canvas, subjects.RightHand, handConnections, r.style.RightHandColor, r.style.LineThickness)
		r.drawPoints(&canvas, subjects.RightHand, r.style.RightHandColor, r.style.PointRadius)
	}

	r.drawChrome(&canvas, subjects)

	return canvas
}

// drawGrid lays the faint uniform grid behind the model.
func (r *ModelRenderer) drawGrid(canvas *gocv.Mat) {
	for x := 0; x < r.width; x += r.style.GridSpacing {
		gocv.Line(canvas, image.Pt(x, 0), image.Pt(x, r.height), r.style.GridColor, 1)
	}
	for y := 0; y < r.height; y += r.style.GridSpacing {
		gocv.Line(canvas, image.Pt(0, y), image.Pt(r.width, y), r.style.GridColor, 1)
	}
}

// drawConnections joins landmark pairs with lines, skipping any pair
// whose indices fall outside the set.
func (r *ModelRenderer) drawConnections(canvas *gocv.Mat, set *detector.LandmarkSet, pairs [][2]int, clr color.RGBA, thickness int) {
	for _, pair := range pairs {
		if pair[0] >= set.Len() || pair[1] >= set.Len() {
			continue
		}
		gocv.Line(canvas, r.pixel(set.Points[pair[0]]), r.pixel(set.Points[pair[1]]), clr, thickness)
	}
}

func (r *ModelRenderer) drawPoints(canvas *gocv.Mat, set *detector.LandmarkSet, clr color.RGBA, radius int) {
	for _, p := range set.Points {
		gocv.Circle(canvas, r.pixel(p), radius, clr, -1)
	}
}

// drawChrome adds the title, the three status dots and, when anything
// was detected, the total landmark count.
func (r *ModelRenderer) drawChrome(canvas *gocv.Mat, subjects Subjects) {
	st := r.style

	gocv.PutText(canvas, "DIGITAL MODEL", image.Pt(st.OverlayMarginX, st.OverlayMarginY), gocv.FontHersheyPlain, st.FontScale, st.HeaderColor, 1)

	dot := func(index int, label string, on bool) {
		clr := st.DimColor
		if on {
			switch label {
			case "POSE":
				clr = st.PoseColor
			case "FACE":
				clr = st.FaceColor
			case "HANDS":
				clr = st.RightHandColor
			}
		}
		x := r.width - 90
		y := st.OverlayMarginY + index*st.LineSpacing
		gocv.Circle(canvas, image.Pt(x, y-4), 5, clr, -1)
		gocv.PutText(canvas, label, image.Pt(x+12, y), gocv.FontHersheyPlain, st.SmallFontScale, clr, 1)
	}

	dot(0, "POSE", subjects.Pose.Len() > 0)
	dot(1, "FACE", subjects.Face.Len() > 0)
	dot(2, "HANDS", subjects.HandsDetected())

	if subjects.Any() {
		count := fmt.Sprintf("POINTS: %d", subjects.TotalLandmarks())
		gocv.PutText(canvas, count, image.Pt(st.OverlayMarginX, r.height-10), gocv.FontHersheyPlain, st.SmallFontScale, st.TextColor, 1)
	}
}

// pixel maps a normalized landmark onto canvas coordinates.
func (r *ModelRenderer) pixel(p detector.Point) image.Point {
	return image.Pt(int(p.X*float64(r.width)), int(p.Y*float64(r.height)))
}
