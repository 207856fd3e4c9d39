package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ayusman/natyam/internal/app"
	"github.com/ayusman/natyam/internal/capture"
	"github.com/ayusman/natyam/internal/config"
	"github.com/ayusman/natyam/internal/detector"
	"github.com/ayusman/natyam/internal/render"
	"github.com/ayusman/natyam/internal/server"
	"github.com/ayusman/natyam/internal/store"
)

func main() {
	fmt.Println("Natyam - Body, Hand and Face Tracking")

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(findConfigFile())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st := openStore(cfg, log)
	if st != nil {
		defer st.Close()
	}

	camera := capture.NewCamera(capture.Config{
		DeviceID: cfg.Camera.Device,
		Width:    cfg.Camera.Width,
		Height:   cfg.Camera.Height,
		FPS:      cfg.Camera.FPS,
	})

	appConfig := app.Config{
		Camera:       camera,
		Pose:         newDetector(detector.KindPose, cfg, log),
		Hands:        newDetector(detector.KindHands, cfg, log),
		Face:         newDetector(detector.KindFace, cfg, log),
		Presenter:    app.NewWindowPresenter(5),
		Style:        render.DefaultStyle(),
		CanvasWidth:  cfg.Canvas.Width,
		CanvasHeight: cfg.Canvas.Height,
		Store:        st,
		Log:          log,
	}

	if cfg.Server.Addr != "" {
		feed := server.NewFeed()
		appConfig.Feed = feed

		srv := server.New(server.Config{Feed: feed, Store: st, Log: log})
		go func() {
			log.WithField("addr", cfg.Server.Addr).Info("monitor listening")
			if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
				log.WithError(err).Warn("monitor server stopped")
			}
		}()
	}

	if err := app.New(appConfig).Run(); err != nil {
		log.Fatalf("Tracker failed: %v", err)
	}
}

// newDetector tries MediaPipe first and falls back to a mock detector
// so the program still runs, with empty results, when the sidecar is
// unavailable.
func newDetector(kind detector.Kind, cfg config.Config, log *logrus.Logger) detector.Detector {
	detConfig := detector.Config{
		MinConfidence:   cfg.Detector.MinDetectionConfidence,
		MinTrackingConf: cfg.Detector.MinTrackingConfidence,
		MaxHands:        cfg.Detector.MaxHands,
		ModelComplexity: cfg.Detector.ModelComplexity,
		RefineLandmarks: cfg.Detector.RefineLandmarks,
	}

	if mp, err := detector.NewMediaPipeDetector(kind, detConfig); err == nil {
		log.WithField("detector", kind).Info("using MediaPipe detection")
		return mp
	} else {
		log.WithField("detector", kind).WithError(err).Warn("MediaPipe not available, using mock detector")
		return detector.NewMockDetector(kind)
	}
}

// openStore opens the session database, defaulting to ~/.natyam.
// A storage failure is not fatal; the tracker runs without history.
func openStore(cfg config.Config, log *logrus.Logger) *store.Store {
	dbPath := cfg.Store.Path
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.WithError(err).Warn("no home directory, session history disabled")
			return nil
		}
		dbDir := filepath.Join(homeDir, ".natyam")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			log.WithError(err).Warn("cannot create data directory, session history disabled")
			return nil
		}
		dbPath = filepath.Join(dbDir, "natyam.db")
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.WithError(err).Warn("cannot open session database, session history disabled")
		return nil
	}
	return st
}

// findConfigFile searches for natyam.yaml in common locations.
// Returns the first existing file or empty string if none found.
func findConfigFile() string {
	candidates := []string{"natyam.yaml", "../natyam.yaml"}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		candidates = append(candidates, filepath.Join(homeDir, ".natyam", "natyam.yaml"))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
