// Package detector provides landmark detection interfaces and types for
// body pose, hand and face mesh tracking.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist            = 0
	ThumbCMC         = 1
	ThumbMCP         = 2
	ThumbIP          = 3
	ThumbTip         = 4
	IndexMCP         = 5
	IndexPIP         = 6
	IndexDIP         = 7
	IndexTip         = 8
	MiddleMCP        = 9
	MiddlePIP        = 10
	MiddleDIP        = 11
	MiddleTip        = 12
	RingMCP          = 13
	RingPIP          = 14
	RingDIP          = 15
	RingTip          = 16
	PinkyMCP         = 17
	PinkyPIP         = 18
	PinkyDIP         = 19
	PinkyTip         = 20
	NumHandLandmarks = 21
)

// Pose landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	PoseNose           = 0
	PoseLeftEyeInner   = 1
	PoseLeftEye        = 2
	PoseLeftEyeOuter   = 3
	PoseRightEyeInner  = 4
	PoseRightEye       = 5
	PoseRightEyeOuter  = 6
	PoseLeftEar        = 7
	PoseRightEar       = 8
	PoseMouthLeft      = 9
	PoseMouthRight     = 10
	PoseLeftShoulder   = 11
	PoseRightShoulder  = 12
	PoseLeftElbow      = 13
	PoseRightElbow     = 14
	PoseLeftWrist      = 15
	PoseRightWrist     = 16
	PoseLeftPinky      = 17
	PoseRightPinky     = 18
	PoseLeftIndex      = 19
	PoseRightIndex     = 20
	PoseLeftThumb      = 21
	PoseRightThumb     = 22
	PoseLeftHip        = 23
	PoseRightHip       = 24
	PoseLeftKnee       = 25
	PoseRightKnee      = 26
	PoseLeftAnkle      = 27
	PoseRightAnkle     = 28
	PoseLeftHeel       = 29
	PoseRightHeel      = 30
	PoseLeftFootIndex  = 31
	PoseRightFootIndex = 32
	NumPoseLandmarks   = 33
)

// NumFaceLandmarks is the face mesh point count with iris refinement
// enabled; without refinement the mesh has 468 points.
const NumFaceLandmarks = 478

// Point represents a single tracked landmark. X and Y are normalized
// image coordinates in [0,1], Z is depth relative to the subject, and
// Visibility is the model's confidence that the point is in frame.
type Point struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility,omitempty"`
}

// LandmarkSet holds every landmark for one detected subject: a body,
// one hand or one face. Label carries the hand detector's handedness
// classification ("Left" or "Right"); it is empty for pose and face
// subjects.
type LandmarkSet struct {
	Points []Point `json:"points"`
	Label  string  `json:"label,omitempty"`
	Score  float64 `json:"score"`
}

// Len returns the number of landmarks in the set. A nil set has zero
// landmarks, so absent subjects count as empty.
func (s *LandmarkSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}
