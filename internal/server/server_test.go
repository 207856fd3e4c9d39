package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ayusman/natyam/internal/store"
)

func TestFeed(t *testing.T) {
	t.Run("empty feed has nothing", func(t *testing.T) {
		feed := NewFeed()

		frame, seq := feed.Frame()
		if frame != nil || seq != 0 {
			t.Errorf("expected empty feed, got frame=%v seq=%d", frame, seq)
		}
		if feed.Landmarks() != nil {
			t.Error("expected nil landmarks")
		}
	})

	t.Run("publish advances sequence", func(t *testing.T) {
		feed := NewFeed()

		feed.Publish([]byte("jpeg-1"), []byte(`{"n":1}`))
		frame, seq := feed.Frame()
		if string(frame) != "jpeg-1" || seq != 1 {
			t.Errorf("got frame=%q seq=%d", frame, seq)
		}

		feed.Publish([]byte("jpeg-2"), nil)
		frame, seq = feed.Frame()
		if string(frame) != "jpeg-2" || seq != 2 {
			t.Errorf("got frame=%q seq=%d", frame, seq)
		}

		// nil landmark publish keeps the previous summary
		if string(feed.Landmarks()) != `{"n":1}` {
			t.Errorf("landmarks overwritten: %s", feed.Landmarks())
		}
	})
}

func TestServer_Health(t *testing.T) {
	t.Run("reports ok", func(t *testing.T) {
		srv := New(Config{Feed: NewFeed()})
		ts := httptest.NewServer(srv)
		defer ts.Close()

		resp, err := ts.Client().Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health request error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if body["status"] != "ok" {
			t.Errorf("status = %v, want ok", body["status"])
		}
	})

	t.Run("includes session count when store configured", func(t *testing.T) {
		st, err := store.New(filepath.Join(t.TempDir(), "natyam.db"))
		if err != nil {
			t.Fatalf("store.New() error = %v", err)
		}
		defer st.Close()

		if _, err := st.StartSession(); err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}

		srv := New(Config{Store: st})
		ts := httptest.NewServer(srv)
		defer ts.Close()

		resp, err := ts.Client().Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health request error = %v", err)
		}
		defer resp.Body.Close()

		var body map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode error = %v", err)
		}
		if body["sessions"] != float64(1) {
			t.Errorf("sessions = %v, want 1", body["sessions"])
		}
	})

	t.Run("rejects non-GET", func(t *testing.T) {
		srv := New(Config{})
		ts := httptest.NewServer(srv)
		defer ts.Close()

		resp, err := ts.Client().Post(ts.URL+"/api/health", "application/json", nil)
		if err != nil {
			t.Fatalf("request error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
		}
	})
}
