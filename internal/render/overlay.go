package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/natyam/internal/detector"
	"github.com/ayusman/natyam/internal/gesture"
)

// OverlayRenderer writes the per-frame status text onto the camera
// image. It holds no per-frame state; Draw mutates the given frame in
// place and never fails, since absent detections are a valid branch.
type OverlayRenderer struct {
	style Style
}

// NewOverlayRenderer creates an OverlayRenderer with the given style.
func NewOverlayRenderer(style Style) *OverlayRenderer {
	return &OverlayRenderer{style: style}
}

// Draw annotates the frame with joint angles, hand and face status and
// the active-systems summary for the given detection results.
func (r *OverlayRenderer) Draw(frame *gocv.Mat, subjects Subjects) {
	st := r.style
	y := st.OverlayMarginY

	put := func(text string, scale float64, clr color.RGBA) {
		gocv.PutText(frame, text, image.Pt(st.OverlayMarginX, y), gocv.FontHersheyPlain, scale, clr, 1)
		y += st.LineSpacing
	}

	put("NATYAM TRACKER", st.FontScale, st.HeaderColor)

	// Joint angles, displayed as truncated integers
	if angles, ok := gesture.PoseAngles(subjects.Pose); ok {
		put(fmt.Sprintf("L ELBOW: %d  R ELBOW: %d", int(angles.LeftElbow.Deg), int(angles.RightElbow.Deg)), st.SmallFontScale, st.TextColor)
		put(fmt.Sprintf("L KNEE: %d  R KNEE: %d", int(angles.LeftKnee.Deg), int(angles.RightKnee.Deg)), st.SmallFontScale, st.TextColor)
		put(fmt.Sprintf("L HIP: %d  R HIP: %d", int(angles.LeftHip.Deg), int(angles.RightHip.Deg)), st.SmallFontScale, st.TextColor)
	} else {
		put("POSE NOT DETECTED - STEP INTO FRAME", st.SmallFontScale, st.AlertColor)
	}

	// Per-hand status and extended-finger counts
	put(handLine("L HAND", subjects.LeftHand), st.SmallFontScale, st.TextColor)
	put(handLine("R HAND", subjects.RightHand), st.SmallFontScale, st.TextColor)

	// Face status and point count
	if n := subjects.Face.Len(); n > 0 {
		put(fmt.Sprintf("FACE: DETECTED (%d PTS)", n), st.SmallFontScale, st.TextColor)
	} else {
		put("FACE: NOT DETECTED", st.SmallFontScale, st.AlertColor)
	}

	put("ACTIVE: "+subjects.ActiveSummary(), st.SmallFontScale, st.HeaderColor)
}

func handLine(label string, hand *detector.LandmarkSet) string {
	if hand.Len() == 0 {
		return label + ": NOT DETECTED"
	}
	count := gesture.ExtendedCount(gesture.AnalyzeFingers(hand))
	return fmt.Sprintf("%s: DETECTED  FINGERS UP: %d", label, count)
}
