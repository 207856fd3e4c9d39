package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one tracker run: when it ran and aggregate frame counts.
// Per-frame detection results are never persisted, only these totals.
type Session struct {
	ID         string
	StartedAt  time.Time
	EndedAt    *time.Time
	Frames     int
	PoseFrames int
	HandFrames int
	FaceFrames int
}

// Stats holds the counters a session accumulates while running.
type Stats struct {
	Frames     int
	PoseFrames int
	HandFrames int
	FaceFrames int
}

// StartSession inserts a new session row and returns its ID.
func (s *Store) StartSession() (string, error) {
	id := uuid.NewString()

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		id, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}

	return id, nil
}

// FinishSession records the end time and final counters for a session.
func (s *Store) FinishSession(id string, stats Stats) error {
	result, err := s.db.Exec(
		`UPDATE sessions
		 SET ended_at = ?, frames = ?, pose_frames = ?, hand_frames = ?, face_frames = ?
		 WHERE id = ?`,
		time.Now().UTC(), stats.Frames, stats.PoseFrames, stats.HandFrames, stats.FaceFrames, id,
	)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("finish session: no session with id %s", id)
	}

	return nil
}

// GetSession returns one session by ID.
func (s *Store) GetSession(id string) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT id, started_at, ended_at, frames, pose_frames, hand_frames, face_frames
		 FROM sessions WHERE id = ?`, id,
	)

	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no session with id %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]*Session, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, ended_at, frames, pose_frames, hand_frames, face_frames
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// CountSessions returns the total number of recorded sessions.
func (s *Store) CountSessions() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var session Session
	var endedAt sql.NullTime

	err := row.Scan(
		&session.ID, &session.StartedAt, &endedAt,
		&session.Frames, &session.PoseFrames, &session.HandFrames, &session.FaceFrames,
	)
	if err != nil {
		return nil, err
	}

	if endedAt.Valid {
		session.EndedAt = &endedAt.Time
	}

	return &session, nil
}
