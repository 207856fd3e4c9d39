// Package gesture derives joint-angle metrics from detected landmarks:
// per-finger bend state for hands and joint angles for body poses.
package gesture

import (
	"github.com/ayusman/natyam/internal/detector"
	"github.com/ayusman/natyam/internal/geometry"
)

// Finger names a digit on one hand.
type Finger string

const (
	Thumb  Finger = "thumb"
	Index  Finger = "index"
	Middle Finger = "middle"
	Ring   Finger = "ring"
	Pinky  Finger = "pinky"
)

// Fingers lists all five digits in anatomical order, for callers that
// need a stable iteration order over the analysis result.
var Fingers = []Finger{Thumb, Index, Middle, Ring, Pinky}

// Extension thresholds in degrees. The thumb bends across two joints
// and reads straighter than the other digits, so it gets a higher bar.
const (
	thumbExtendedDeg  = 160.0
	fingerExtendedDeg = 140.0
)

// fingerJoints maps each digit to the landmark triple its bend angle is
// measured over: base, vertex, tip. Fingers use MCP/PIP/tip; the thumb
// uses CMC/MCP/tip to span its two-joint structure.
var fingerJoints = map[Finger][3]int{
	Thumb:  {detector.ThumbCMC, detector.ThumbMCP, detector.ThumbTip},
	Index:  {detector.IndexMCP, detector.IndexPIP, detector.IndexTip},
	Middle: {detector.MiddleMCP, detector.MiddlePIP, detector.MiddleTip},
	Ring:   {detector.RingMCP, detector.RingPIP, detector.RingTip},
	Pinky:  {detector.PinkyMCP, detector.PinkyPIP, detector.PinkyTip},
}

// FingerState is the derived bend metric for one digit.
type FingerState struct {
	// Angle is the joint angle in degrees, 0 when undefined.
	Angle float64

	// Extended reports whether the angle exceeds the digit's
	// straightness threshold. This is a heuristic on fixed constants,
	// not a calibrated biomechanical model.
	Extended bool
}

// AnalyzeFingers computes the bend state of all five digits from one
// hand's 21-point landmark set. An absent or incomplete hand yields an
// empty map.
func AnalyzeFingers(hand *detector.LandmarkSet) map[Finger]FingerState {
	if hand.Len() < detector.NumHandLandmarks {
		return map[Finger]FingerState{}
	}

	states := make(map[Finger]FingerState, len(fingerJoints))
	for finger, joints := range fingerJoints {
		deg, ok := geometry.Angle(
			point(hand.Points[joints[0]]),
			point(hand.Points[joints[1]]),
			point(hand.Points[joints[2]]),
		)
		if !ok {
			states[finger] = FingerState{}
			continue
		}

		threshold := fingerExtendedDeg
		if finger == Thumb {
			threshold = thumbExtendedDeg
		}

		states[finger] = FingerState{
			Angle:    deg,
			Extended: deg > threshold,
		}
	}

	return states
}

// ExtendedCount returns how many digits in the given analysis are
// extended.
func ExtendedCount(states map[Finger]FingerState) int {
	count := 0
	for _, s := range states {
		if s.Extended {
			count++
		}
	}
	return count
}

// point projects a landmark onto the 2D plane the angle metrics are
// measured in.
func point(p detector.Point) geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}
