package store

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "natyam.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Sessions(t *testing.T) {
	t.Run("start and finish", func(t *testing.T) {
		s := testStore(t)

		id, err := s.StartSession()
		if err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}
		if id == "" {
			t.Fatal("expected a session id")
		}

		stats := Stats{Frames: 120, PoseFrames: 100, HandFrames: 80, FaceFrames: 110}
		if err := s.FinishSession(id, stats); err != nil {
			t.Fatalf("FinishSession() error = %v", err)
		}

		session, err := s.GetSession(id)
		if err != nil {
			t.Fatalf("GetSession() error = %v", err)
		}
		if session.Frames != 120 || session.PoseFrames != 100 || session.HandFrames != 80 || session.FaceFrames != 110 {
			t.Errorf("counters not persisted: %+v", session)
		}
		if session.EndedAt == nil {
			t.Error("expected ended_at to be set")
		}
	})

	t.Run("finish unknown session fails", func(t *testing.T) {
		s := testStore(t)

		if err := s.FinishSession("missing", Stats{}); err == nil {
			t.Error("expected error for unknown session")
		}
	})

	t.Run("running session has no end time", func(t *testing.T) {
		s := testStore(t)

		id, err := s.StartSession()
		if err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}

		session, err := s.GetSession(id)
		if err != nil {
			t.Fatalf("GetSession() error = %v", err)
		}
		if session.EndedAt != nil {
			t.Error("expected nil ended_at for a running session")
		}
	})

	t.Run("recent and count", func(t *testing.T) {
		s := testStore(t)

		for i := 0; i < 3; i++ {
			if _, err := s.StartSession(); err != nil {
				t.Fatalf("StartSession() error = %v", err)
			}
		}

		count, err := s.CountSessions()
		if err != nil {
			t.Fatalf("CountSessions() error = %v", err)
		}
		if count != 3 {
			t.Errorf("expected 3 sessions, got %d", count)
		}

		sessions, err := s.RecentSessions(2)
		if err != nil {
			t.Fatalf("RecentSessions() error = %v", err)
		}
		if len(sessions) != 2 {
			t.Errorf("expected 2 sessions, got %d", len(sessions))
		}
	})
}
