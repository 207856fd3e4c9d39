package server

import "sync"

// Feed carries the latest annotated frame and landmark summary from
// the frame loop to HTTP clients. The loop publishes once per
// iteration; handlers read whatever is newest. Publish never blocks,
// so the single-threaded pipeline keeps its timing.
type Feed struct {
	mu        sync.RWMutex
	frame     []byte
	landmarks []byte
	seq       uint64
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Publish stores the annotated JPEG frame and the landmark summary
// JSON for the current iteration. Either may be nil to keep the
// previous value.
func (f *Feed) Publish(frameJPEG, landmarksJSON []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if frameJPEG != nil {
		f.frame = frameJPEG
	}
	if landmarksJSON != nil {
		f.landmarks = landmarksJSON
	}
	f.seq++
}

// Frame returns the latest annotated JPEG and its sequence number.
// Handlers use the sequence to avoid re-sending an unchanged frame.
func (f *Feed) Frame() ([]byte, uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.frame, f.seq
}

// Landmarks returns the latest landmark summary JSON.
func (f *Feed) Landmarks() []byte {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.landmarks
}
