package app

import (
	"encoding/json"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/natyam/internal/detector"
	"github.com/ayusman/natyam/internal/render"
)

// runLoop is the synchronous frame pipeline. Every iteration runs each
// stage to completion in sequence; nothing carries over to the next
// frame except the accumulated counters.
func (a *App) runLoop() {
	for {
		frame, err := a.config.Camera.ReadFrame()
		if err != nil {
			// Capture failure is the only fatal condition.
			a.log.WithError(err).Error("capture failed, ending session")
			return
		}

		// Mirror so the display behaves like a mirror
		gocv.Flip(*frame, frame, 1)

		subjects := a.detectAll(frame)
		a.count(subjects)

		annotated := frame.Clone()
		a.overlay.Draw(&annotated, subjects)

		model := a.model.Render(subjects)

		key := a.config.Presenter.Present(annotated, model)

		a.publish(&annotated, subjects)

		model.Close()
		annotated.Close()
		frame.Close()

		if key == quitKey || key == escKey {
			return
		}
	}
}

// detectAll runs the three detectors over one frame. Their order does
// not matter; no result feeds another. A detector error is logged and
// treated as an empty result, since only capture failure ends the
// session.
func (a *App) detectAll(frame *gocv.Mat) render.Subjects {
	var subjects render.Subjects

	if sets := a.detect(a.config.Pose, frame); len(sets) > 0 {
		subjects.Pose = &sets[0]
	}

	// Split hands by the detector's own handedness label
	for _, set := range a.detect(a.config.Hands, frame) {
		set := set
		switch set.Label {
		case "Left":
			if subjects.LeftHand == nil {
				subjects.LeftHand = &set
			}
		case "Right":
			if subjects.RightHand == nil {
				subjects.RightHand = &set
			}
		default:
			// Unlabeled hands take the first free slot
			if subjects.LeftHand == nil {
				subjects.LeftHand = &set
			} else if subjects.RightHand == nil {
				subjects.RightHand = &set
			}
		}
	}

	// Only the first detected face is used
	if sets := a.detect(a.config.Face, frame); len(sets) > 0 {
		subjects.Face = &sets[0]
	}

	return subjects
}

func (a *App) detect(d detector.Detector, frame *gocv.Mat) []detector.LandmarkSet {
	if d == nil {
		return nil
	}
	sets, err := d.Detect(frame)
	if err != nil {
		a.log.WithError(err).WithField("detector", d.Kind()).Warn("detection failed")
		return nil
	}
	return sets
}

func (a *App) count(subjects render.Subjects) {
	a.stats.Frames++
	if subjects.Pose.Len() > 0 {
		a.stats.PoseFrames++
	}
	if subjects.HandsDetected() {
		a.stats.HandFrames++
	}
	if subjects.Face.Len() > 0 {
		a.stats.FaceFrames++
	}
}

// publish pushes the annotated frame and a landmark summary to the
// HTTP feed, when one is configured.
func (a *App) publish(annotated *gocv.Mat, subjects render.Subjects) {
	if a.config.Feed == nil {
		return
	}

	var frameJPEG []byte
	if buf, err := gocv.IMEncode(".jpg", *annotated); err == nil {
		frameJPEG = make([]byte, buf.Len())
		copy(frameJPEG, buf.GetBytes())
		buf.Close()
	}

	summary, err := json.Marshal(map[string]any{
		"timestamp":   time.Now().UnixMilli(),
		"active":      subjects.ActiveSummary(),
		"total":       subjects.TotalLandmarks(),
		"pose":        subjects.Pose,
		"left_hand":   subjects.LeftHand,
		"right_hand":  subjects.RightHand,
		"face_points": subjects.Face.Len(),
	})
	if err != nil {
		summary = nil
	}

	a.config.Feed.Publish(frameJPEG, summary)
}
