package app

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/ayusman/natyam/internal/capture"
	"github.com/ayusman/natyam/internal/detector"
	"github.com/ayusman/natyam/internal/render"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testApp(t *testing.T, cam capture.Camera, pose, hands, face detector.Detector) (*App, *MockPresenter) {
	t.Helper()

	presenter := NewMockPresenter()
	a := New(Config{
		Camera:       cam,
		Pose:         pose,
		Hands:        hands,
		Face:         face,
		Presenter:    presenter,
		Style:        render.DefaultStyle(),
		CanvasWidth:  320,
		CanvasHeight: 240,
		Log:          quietLogger(),
	})
	return a, presenter
}

func oneFrame(t *testing.T) []*gocv.Mat {
	t.Helper()

	mat := gocv.NewMatWithSize(240, 320, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return []*gocv.Mat{&mat}
}

func TestApp_Run(t *testing.T) {
	t.Run("stops on capture failure after one frame", func(t *testing.T) {
		cam := capture.NewMockCamera(oneFrame(t), false)
		a, presenter := testApp(t, cam,
			detector.NewMockDetector(detector.KindPose),
			detector.NewMockDetector(detector.KindHands),
			detector.NewMockDetector(detector.KindFace),
		)

		if err := a.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if got := presenter.Presented(); got != 1 {
			t.Errorf("expected exactly 1 iteration, got %d", got)
		}
		if !presenter.Closed() {
			t.Error("presenter should be closed on exit")
		}
		if cam.IsOpen() {
			t.Error("camera should be closed on exit")
		}
	})

	t.Run("stops on quit key", func(t *testing.T) {
		cam := capture.NewMockCamera(oneFrame(t), true)
		a, presenter := testApp(t, cam,
			detector.NewMockDetector(detector.KindPose),
			detector.NewMockDetector(detector.KindHands),
			detector.NewMockDetector(detector.KindFace),
		)
		presenter.SetKeys([]int{-1, -1, quitKey})

		if err := a.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if got := presenter.Presented(); got != 3 {
			t.Errorf("expected 3 iterations, got %d", got)
		}
	})

	t.Run("stops on escape key", func(t *testing.T) {
		cam := capture.NewMockCamera(oneFrame(t), true)
		a, presenter := testApp(t, cam,
			detector.NewMockDetector(detector.KindPose),
			detector.NewMockDetector(detector.KindHands),
			detector.NewMockDetector(detector.KindFace),
		)
		presenter.SetKeys([]int{escKey})

		if err := a.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if got := presenter.Presented(); got != 1 {
			t.Errorf("expected 1 iteration, got %d", got)
		}
	})

	t.Run("counts detections per frame", func(t *testing.T) {
		cam := capture.NewMockCamera(oneFrame(t), false)

		pose := detector.NewMockDetector(detector.KindPose)
		pose.SetSubjects([]detector.LandmarkSet{detector.StandingPoseLandmarks()})

		hands := detector.NewMockDetector(detector.KindHands)
		left := detector.FlatHandLandmarks()
		left.Label = "Left"
		hands.SetSubjects([]detector.LandmarkSet{left})

		face := detector.NewMockDetector(detector.KindFace)
		face.SetSubjects([]detector.LandmarkSet{detector.NeutralFaceLandmarks()})

		a, _ := testApp(t, cam, pose, hands, face)
		if err := a.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		stats := a.Stats()
		if stats.Frames != 1 || stats.PoseFrames != 1 || stats.HandFrames != 1 || stats.FaceFrames != 1 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})
}

func TestApp_DetectAll(t *testing.T) {
	t.Run("splits hands by handedness label", func(t *testing.T) {
		hands := detector.NewMockDetector(detector.KindHands)
		left := detector.FlatHandLandmarks()
		left.Label = "Left"
		right := detector.FistLandmarks()
		right.Label = "Right"
		hands.SetSubjects([]detector.LandmarkSet{right, left})

		a, _ := testApp(t, capture.NewMockCamera(nil, false),
			detector.NewMockDetector(detector.KindPose), hands,
			detector.NewMockDetector(detector.KindFace),
		)

		subjects := a.detectAll(nil)
		if subjects.LeftHand == nil || subjects.LeftHand.Label != "Left" {
			t.Error("left hand not classified")
		}
		if subjects.RightHand == nil || subjects.RightHand.Label != "Right" {
			t.Error("right hand not classified")
		}
	})

	t.Run("uses only the first face", func(t *testing.T) {
		face := detector.NewMockDetector(detector.KindFace)
		first := detector.NeutralFaceLandmarks()
		second := detector.NeutralFaceLandmarks()
		second.Score = 0.1
		face.SetSubjects([]detector.LandmarkSet{first, second})

		a, _ := testApp(t, capture.NewMockCamera(nil, false),
			detector.NewMockDetector(detector.KindPose),
			detector.NewMockDetector(detector.KindHands), face,
		)

		subjects := a.detectAll(nil)
		if subjects.Face == nil {
			t.Fatal("expected a face")
		}
		if subjects.Face.Score != first.Score {
			t.Error("expected the first detected face")
		}
	})

	t.Run("detector error is an empty result", func(t *testing.T) {
		pose := detector.NewMockDetector(detector.KindPose)
		pose.SetError(io.ErrUnexpectedEOF)

		a, _ := testApp(t, capture.NewMockCamera(nil, false),
			pose,
			detector.NewMockDetector(detector.KindHands),
			detector.NewMockDetector(detector.KindFace),
		)

		subjects := a.detectAll(nil)
		if subjects.Pose != nil {
			t.Error("expected no pose on detector error")
		}
	})
}
