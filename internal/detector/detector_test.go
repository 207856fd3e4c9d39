package detector

import (
	"errors"
	"testing"
)

func TestLandmarkSet_Len(t *testing.T) {
	t.Run("nil set is empty", func(t *testing.T) {
		var set *LandmarkSet
		if got := set.Len(); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("counts points", func(t *testing.T) {
		set := FlatHandLandmarks()
		if got := set.Len(); got != NumHandLandmarks {
			t.Errorf("expected %d, got %d", NumHandLandmarks, got)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Run("hands", func(t *testing.T) {
		cfg := DefaultConfig(KindHands)
		if cfg.MaxHands != 2 {
			t.Errorf("expected MaxHands 2, got %d", cfg.MaxHands)
		}
		if cfg.MinConfidence != 0.5 {
			t.Errorf("expected MinConfidence 0.5, got %f", cfg.MinConfidence)
		}
	})

	t.Run("pose", func(t *testing.T) {
		cfg := DefaultConfig(KindPose)
		if cfg.ModelComplexity != 1 {
			t.Errorf("expected ModelComplexity 1, got %d", cfg.ModelComplexity)
		}
	})

	t.Run("face", func(t *testing.T) {
		cfg := DefaultConfig(KindFace)
		if !cfg.RefineLandmarks {
			t.Error("expected RefineLandmarks to default on for face")
		}
	})
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty subjects by default", func(t *testing.T) {
		mock := NewMockDetector(KindPose)

		subjects, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if subjects != nil {
			t.Errorf("expected nil subjects, got %v", subjects)
		}
	})

	t.Run("returns configured subjects", func(t *testing.T) {
		mock := NewMockDetector(KindHands)

		mock.SetSubjects([]LandmarkSet{FlatHandLandmarks(), FistLandmarks()})

		subjects, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(subjects) != 2 {
			t.Errorf("expected 2 subjects, got %d", len(subjects))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector(KindFace)

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		subjects, err := mock.Detect(nil)

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if subjects != nil {
			t.Errorf("expected nil subjects on error, got %v", subjects)
		}
	})

	t.Run("reports its kind", func(t *testing.T) {
		if kind := NewMockDetector(KindFace).Kind(); kind != KindFace {
			t.Errorf("expected %q, got %q", KindFace, kind)
		}
	})
}

func TestFixtures(t *testing.T) {
	t.Run("hand fixtures have 21 points", func(t *testing.T) {
		for name, set := range map[string]LandmarkSet{
			"flat": FlatHandLandmarks(),
			"fist": FistLandmarks(),
		} {
			if len(set.Points) != NumHandLandmarks {
				t.Errorf("%s hand: expected %d points, got %d", name, NumHandLandmarks, len(set.Points))
			}
			if set.Label == "" {
				t.Errorf("%s hand: expected a handedness label", name)
			}
		}
	})

	t.Run("pose fixture has 33 points", func(t *testing.T) {
		set := StandingPoseLandmarks()
		if len(set.Points) != NumPoseLandmarks {
			t.Errorf("expected %d points, got %d", NumPoseLandmarks, len(set.Points))
		}
	})

	t.Run("face fixture has refined point count", func(t *testing.T) {
		set := NeutralFaceLandmarks()
		if len(set.Points) != NumFaceLandmarks {
			t.Errorf("expected %d points, got %d", NumFaceLandmarks, len(set.Points))
		}
	})
}
