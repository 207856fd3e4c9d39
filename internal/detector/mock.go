package detector

import (
	"math"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	kind     Kind
	subjects []LandmarkSet
	err      error
}

// NewMockDetector creates a new MockDetector for the given kind.
func NewMockDetector(kind Kind) *MockDetector {
	return &MockDetector{kind: kind}
}

// SetSubjects sets the landmark sets that will be returned by Detect.
func (m *MockDetector) SetSubjects(subjects []LandmarkSet) {
	m.subjects = subjects
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Kind reports the landmark model the mock stands in for.
func (m *MockDetector) Kind() Kind {
	return m.kind
}

// Detect returns the pre-configured subjects or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]LandmarkSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.subjects, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// FlatHandLandmarks returns a preset hand with every finger fully
// extended and straight, so each finger's joint triple is exactly
// collinear.
func FlatHandLandmarks() LandmarkSet {
	set := LandmarkSet{
		Points: make([]Point, NumHandLandmarks),
		Label:  "Right",
		Score:  0.95,
	}

	set.Points[Wrist] = Point{X: 0.50, Y: 0.90}

	// Thumb along one straight diagonal
	set.Points[ThumbCMC] = Point{X: 0.58, Y: 0.80}
	set.Points[ThumbMCP] = Point{X: 0.64, Y: 0.72}
	set.Points[ThumbIP] = Point{X: 0.70, Y: 0.64}
	set.Points[ThumbTip] = Point{X: 0.76, Y: 0.56}

	// Each finger is a straight vertical column
	set.Points[IndexMCP] = Point{X: 0.56, Y: 0.68}
	set.Points[IndexPIP] = Point{X: 0.56, Y: 0.56}
	set.Points[IndexDIP] = Point{X: 0.56, Y: 0.47}
	set.Points[IndexTip] = Point{X: 0.56, Y: 0.38}

	set.Points[MiddleMCP] = Point{X: 0.50, Y: 0.66}
	set.Points[MiddlePIP] = Point{X: 0.50, Y: 0.52}
	set.Points[MiddleDIP] = Point{X: 0.50, Y: 0.42}
	set.Points[MiddleTip] = Point{X: 0.50, Y: 0.30}

	set.Points[RingMCP] = Point{X: 0.44, Y: 0.68}
	set.Points[RingPIP] = Point{X: 0.44, Y: 0.56}
	set.Points[RingDIP] = Point{X: 0.44, Y: 0.47}
	set.Points[RingTip] = Point{X: 0.44, Y: 0.38}

	set.Points[PinkyMCP] = Point{X: 0.38, Y: 0.70}
	set.Points[PinkyPIP] = Point{X: 0.38, Y: 0.60}
	set.Points[PinkyDIP] = Point{X: 0.38, Y: 0.52}
	set.Points[PinkyTip] = Point{X: 0.38, Y: 0.44}

	return set
}

// FistLandmarks returns a preset hand with every finger curled toward
// the palm.
func FistLandmarks() LandmarkSet {
	set := LandmarkSet{
		Points: make([]Point, NumHandLandmarks),
		Label:  "Right",
		Score:  0.95,
	}

	set.Points[Wrist] = Point{X: 0.50, Y: 0.90}

	// Thumb folded across the palm
	set.Points[ThumbCMC] = Point{X: 0.58, Y: 0.80}
	set.Points[ThumbMCP] = Point{X: 0.62, Y: 0.74}
	set.Points[ThumbIP] = Point{X: 0.59, Y: 0.71}
	set.Points[ThumbTip] = Point{X: 0.56, Y: 0.70}

	// Fingers bent sharply at the PIP joint, tips back near the palm
	set.Points[IndexMCP] = Point{X: 0.56, Y: 0.68}
	set.Points[IndexPIP] = Point{X: 0.56, Y: 0.60}
	set.Points[IndexDIP] = Point{X: 0.58, Y: 0.66}
	set.Points[IndexTip] = Point{X: 0.58, Y: 0.72}

	set.Points[MiddleMCP] = Point{X: 0.50, Y: 0.66}
	set.Points[MiddlePIP] = Point{X: 0.50, Y: 0.58}
	set.Points[MiddleDIP] = Point{X: 0.52, Y: 0.64}
	set.Points[MiddleTip] = Point{X: 0.52, Y: 0.70}

	set.Points[RingMCP] = Point{X: 0.44, Y: 0.68}
	set.Points[RingPIP] = Point{X: 0.44, Y: 0.60}
	set.Points[RingDIP] = Point{X: 0.46, Y: 0.66}
	set.Points[RingTip] = Point{X: 0.46, Y: 0.72}

	set.Points[PinkyMCP] = Point{X: 0.38, Y: 0.70}
	set.Points[PinkyPIP] = Point{X: 0.38, Y: 0.63}
	set.Points[PinkyDIP] = Point{X: 0.40, Y: 0.68}
	set.Points[PinkyTip] = Point{X: 0.40, Y: 0.74}

	return set
}

// StandingPoseLandmarks returns a preset body pose standing upright
// facing the camera, arms at the sides and legs straight.
func StandingPoseLandmarks() LandmarkSet {
	set := LandmarkSet{
		Points: make([]Point, NumPoseLandmarks),
		Score:  0.9,
	}
	for i := range set.Points {
		set.Points[i].Visibility = 0.9
	}

	// Head
	set.Points[PoseNose] = Point{X: 0.50, Y: 0.10}
	set.Points[PoseLeftEyeInner] = Point{X: 0.52, Y: 0.09}
	set.Points[PoseLeftEye] = Point{X: 0.53, Y: 0.09}
	set.Points[PoseLeftEyeOuter] = Point{X: 0.54, Y: 0.09}
	set.Points[PoseRightEyeInner] = Point{X: 0.48, Y: 0.09}
	set.Points[PoseRightEye] = Point{X: 0.47, Y: 0.09}
	set.Points[PoseRightEyeOuter] = Point{X: 0.46, Y: 0.09}
	set.Points[PoseLeftEar] = Point{X: 0.56, Y: 0.10}
	set.Points[PoseRightEar] = Point{X: 0.44, Y: 0.10}
	set.Points[PoseMouthLeft] = Point{X: 0.52, Y: 0.13}
	set.Points[PoseMouthRight] = Point{X: 0.48, Y: 0.13}

	// Arms hanging straight, so each elbow triple is collinear
	set.Points[PoseLeftShoulder] = Point{X: 0.60, Y: 0.25}
	set.Points[PoseLeftElbow] = Point{X: 0.62, Y: 0.40}
	set.Points[PoseLeftWrist] = Point{X: 0.64, Y: 0.55}
	set.Points[PoseRightShoulder] = Point{X: 0.40, Y: 0.25}
	set.Points[PoseRightElbow] = Point{X: 0.38, Y: 0.40}
	set.Points[PoseRightWrist] = Point{X: 0.36, Y: 0.55}

	set.Points[PoseLeftPinky] = Point{X: 0.65, Y: 0.59}
	set.Points[PoseLeftIndex] = Point{X: 0.64, Y: 0.60}
	set.Points[PoseLeftThumb] = Point{X: 0.63, Y: 0.58}
	set.Points[PoseRightPinky] = Point{X: 0.35, Y: 0.59}
	set.Points[PoseRightIndex] = Point{X: 0.36, Y: 0.60}
	set.Points[PoseRightThumb] = Point{X: 0.37, Y: 0.58}

	// Legs straight down, knee triples collinear
	set.Points[PoseLeftHip] = Point{X: 0.56, Y: 0.55}
	set.Points[PoseLeftKnee] = Point{X: 0.56, Y: 0.72}
	set.Points[PoseLeftAnkle] = Point{X: 0.56, Y: 0.89}
	set.Points[PoseRightHip] = Point{X: 0.44, Y: 0.55}
	set.Points[PoseRightKnee] = Point{X: 0.44, Y: 0.72}
	set.Points[PoseRightAnkle] = Point{X: 0.44, Y: 0.89}

	set.Points[PoseLeftHeel] = Point{X: 0.57, Y: 0.93}
	set.Points[PoseLeftFootIndex] = Point{X: 0.59, Y: 0.95}
	set.Points[PoseRightHeel] = Point{X: 0.43, Y: 0.93}
	set.Points[PoseRightFootIndex] = Point{X: 0.41, Y: 0.95}

	return set
}

// NeutralFaceLandmarks returns a preset face mesh with the refined
// 478-point count. The points trace an uneven ring around the face
// center; the exact shape only matters for rendering, not semantics.
func NeutralFaceLandmarks() LandmarkSet {
	set := LandmarkSet{
		Points: make([]Point, NumFaceLandmarks),
		Score:  0.9,
	}

	for i := range set.Points {
		t := float64(i) / NumFaceLandmarks * 2 * math.Pi
		r := 0.10 + 0.05*math.Sin(7*t)
		set.Points[i] = Point{
			X: 0.5 + r*math.Cos(t),
			Y: 0.35 + 1.3*r*math.Sin(t),
		}
	}

	return set
}
