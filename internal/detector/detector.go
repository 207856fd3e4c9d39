package detector

import "gocv.io/x/gocv"

// Kind identifies which landmark model a detector runs.
type Kind string

const (
	KindPose  Kind = "pose"
	KindHands Kind = "hands"
	KindFace  Kind = "face"
)

// Detector defines the interface shared by all three landmark
// detection variants. Pose and face detectors return at most one
// landmark set per frame; the hand detector returns up to the
// configured maximum, each labeled with its handedness.
type Detector interface {
	// Kind reports which landmark model this detector runs.
	Kind() Kind

	// Detect analyzes a video frame and returns the landmark sets of
	// every detected subject. Returns an empty slice if no subject is
	// detected; that is a valid result, not an error.
	Detect(frame *gocv.Mat) ([]LandmarkSet, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds the detection knobs fixed at startup.
type Config struct {
	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64

	// MaxHands is the maximum number of hands to detect. Ignored by the
	// pose and face variants.
	MaxHands int

	// ModelComplexity selects the pose model variant (0, 1 or 2).
	// Ignored by the hand and face variants.
	ModelComplexity int

	// RefineLandmarks enables iris refinement on the face mesh, raising
	// the point count from 468 to 478. Ignored by the other variants.
	RefineLandmarks bool
}

// DefaultConfig returns a Config with sensible default values for the
// given detector kind.
func DefaultConfig(kind Kind) Config {
	cfg := Config{
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
	switch kind {
	case KindHands:
		cfg.MaxHands = 2
	case KindPose:
		cfg.ModelComplexity = 1
	case KindFace:
		cfg.RefineLandmarks = true
	}
	return cfg
}
