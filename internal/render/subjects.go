package render

import (
	"strings"

	"github.com/ayusman/natyam/internal/detector"
)

// Subjects bundles one frame's detection results for the renderers.
// Any field may be nil, meaning that detector saw nothing this frame.
type Subjects struct {
	Pose      *detector.LandmarkSet
	LeftHand  *detector.LandmarkSet
	RightHand *detector.LandmarkSet
	Face      *detector.LandmarkSet
}

// HandsDetected reports whether at least one hand is present.
func (s Subjects) HandsDetected() bool {
	return s.LeftHand.Len() > 0 || s.RightHand.Len() > 0
}

// Any reports whether any detector saw a subject this frame.
func (s Subjects) Any() bool {
	return s.Pose.Len() > 0 || s.HandsDetected() || s.Face.Len() > 0
}

// TotalLandmarks returns the landmark count summed over every detected
// subject.
func (s Subjects) TotalLandmarks() int {
	return s.Pose.Len() + s.LeftHand.Len() + s.RightHand.Len() + s.Face.Len()
}

// ActiveSummary names the systems that produced results this frame,
// "POSE+HANDS+FACE" style, or "NONE".
func (s Subjects) ActiveSummary() string {
	var active []string
	if s.Pose.Len() > 0 {
		active = append(active, "POSE")
	}
	if s.HandsDetected() {
		active = append(active, "HANDS")
	}
	if s.Face.Len() > 0 {
		active = append(active, "FACE")
	}
	if len(active) == 0 {
		return "NONE"
	}
	return strings.Join(active, "+")
}
