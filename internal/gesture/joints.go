package gesture

import (
	"github.com/ayusman/natyam/internal/detector"
	"github.com/ayusman/natyam/internal/geometry"
)

// Measurement is one joint angle, with an explicit marker for the
// degenerate case so callers can tell a real 0 from an undefined angle.
type Measurement struct {
	Deg float64
	OK  bool
}

// JointAngles holds the joint angles derived from one body pose.
//
// The shoulder angles are measured over the same landmark triples as
// the elbows, mirroring the upstream metric definitions; they are kept
// for parity but are not part of the display set.
type JointAngles struct {
	LeftElbow     Measurement
	RightElbow    Measurement
	LeftShoulder  Measurement
	RightShoulder Measurement
	LeftKnee      Measurement
	RightKnee     Measurement
	LeftHip       Measurement
	RightHip      Measurement
}

// jointTriples maps display joints to their landmark triples, vertex in
// the middle.
var (
	leftElbowJoint  = [3]int{detector.PoseLeftShoulder, detector.PoseLeftElbow, detector.PoseLeftWrist}
	rightElbowJoint = [3]int{detector.PoseRightShoulder, detector.PoseRightElbow, detector.PoseRightWrist}
	leftKneeJoint   = [3]int{detector.PoseLeftHip, detector.PoseLeftKnee, detector.PoseLeftAnkle}
	rightKneeJoint  = [3]int{detector.PoseRightHip, detector.PoseRightKnee, detector.PoseRightAnkle}
	leftHipJoint    = [3]int{detector.PoseLeftShoulder, detector.PoseLeftHip, detector.PoseLeftKnee}
	rightHipJoint   = [3]int{detector.PoseRightShoulder, detector.PoseRightHip, detector.PoseRightKnee}
)

// PoseAngles computes the joint angles from one body's 33-point
// landmark set. The second return value is false when the pose is
// absent or incomplete.
func PoseAngles(pose *detector.LandmarkSet) (JointAngles, bool) {
	if pose.Len() < detector.NumPoseLandmarks {
		return JointAngles{}, false
	}

	measure := func(joints [3]int) Measurement {
		deg, ok := geometry.Angle(
			point(pose.Points[joints[0]]),
			point(pose.Points[joints[1]]),
			point(pose.Points[joints[2]]),
		)
		return Measurement{Deg: deg, OK: ok}
	}

	angles := JointAngles{
		LeftElbow:  measure(leftElbowJoint),
		RightElbow: measure(rightElbowJoint),
		LeftKnee:   measure(leftKneeJoint),
		RightKnee:  measure(rightKneeJoint),
		LeftHip:    measure(leftHipJoint),
		RightHip:   measure(rightHipJoint),
	}
	angles.LeftShoulder = angles.LeftElbow
	angles.RightShoulder = angles.RightElbow

	return angles, true
}
