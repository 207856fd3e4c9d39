package render

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/natyam/internal/detector"
)

func allSubjects() Subjects {
	pose := detector.StandingPoseLandmarks()
	left := detector.FlatHandLandmarks()
	left.Label = "Left"
	right := detector.FistLandmarks()
	face := detector.NeutralFaceLandmarks()

	return Subjects{
		Pose:      &pose,
		LeftHand:  &left,
		RightHand: &right,
		Face:      &face,
	}
}

func TestSubjects(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var s Subjects
		if s.Any() {
			t.Error("empty subjects should not report any detection")
		}
		if got := s.TotalLandmarks(); got != 0 {
			t.Errorf("expected 0 landmarks, got %d", got)
		}
		if got := s.ActiveSummary(); got != "NONE" {
			t.Errorf("expected NONE, got %q", got)
		}
	})

	t.Run("total landmark count sums per subject", func(t *testing.T) {
		s := allSubjects()
		want := detector.NumPoseLandmarks + 2*detector.NumHandLandmarks + detector.NumFaceLandmarks
		if got := s.TotalLandmarks(); got != want {
			t.Errorf("expected %d landmarks, got %d", want, got)
		}
	})

	t.Run("active summary lists systems in order", func(t *testing.T) {
		s := allSubjects()
		if got := s.ActiveSummary(); got != "POSE+HANDS+FACE" {
			t.Errorf("expected POSE+HANDS+FACE, got %q", got)
		}

		s.Pose = nil
		s.Face = nil
		if got := s.ActiveSummary(); got != "HANDS" {
			t.Errorf("expected HANDS, got %q", got)
		}
	})
}

func TestOverlayRenderer_Draw(t *testing.T) {
	t.Run("all detectors empty still yields a valid image", func(t *testing.T) {
		frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
		defer frame.Close()

		r := NewOverlayRenderer(DefaultStyle())
		r.Draw(&frame, Subjects{})

		if frame.Empty() {
			t.Error("expected a valid annotated frame")
		}
	})

	t.Run("full detections draw without error", func(t *testing.T) {
		frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
		defer frame.Close()

		r := NewOverlayRenderer(DefaultStyle())
		r.Draw(&frame, allSubjects())

		if frame.Empty() {
			t.Error("expected a valid annotated frame")
		}
	})
}

func TestModelRenderer_Render(t *testing.T) {
	t.Run("canvas has requested size", func(t *testing.T) {
		r := NewModelRenderer(640, 480, DefaultStyle())

		canvas := r.Render(Subjects{})
		defer canvas.Close()

		if canvas.Cols() != 640 || canvas.Rows() != 480 {
			t.Errorf("expected 640x480 canvas, got %dx%d", canvas.Cols(), canvas.Rows())
		}
	})

	t.Run("fresh canvas per call", func(t *testing.T) {
		r := NewModelRenderer(320, 240, DefaultStyle())

		first := r.Render(Subjects{})
		defer first.Close()
		// Painting the first canvas must not leak into the next one
		first.SetTo(gocv.NewScalar(255, 255, 255, 0))

		second := r.Render(Subjects{})
		defer second.Close()

		// Probe a pixel between grid lines; a fresh canvas is black there
		if probe := second.GetVecbAt(15, 15); probe[0] != 0 || probe[1] != 0 || probe[2] != 0 {
			t.Error("expected a fresh canvas per call")
		}
	})

	t.Run("all subjects render", func(t *testing.T) {
		r := NewModelRenderer(640, 480, DefaultStyle())

		canvas := r.Render(allSubjects())
		defer canvas.Close()

		if canvas.Empty() {
			t.Error("expected a composed canvas")
		}
	})
}
