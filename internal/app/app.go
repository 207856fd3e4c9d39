// Package app wires the capture source, the three landmark detectors
// and the renderers into the main tracking loop.
package app

import (
	"github.com/sirupsen/logrus"

	"github.com/ayusman/natyam/internal/capture"
	"github.com/ayusman/natyam/internal/detector"
	"github.com/ayusman/natyam/internal/render"
	"github.com/ayusman/natyam/internal/server"
	"github.com/ayusman/natyam/internal/store"
)

// Key codes that end the session.
const (
	quitKey = int('q')
	escKey  = 27
)

// Config holds the application's collaborators. Camera, the three
// detectors and Presenter are required; Store and Feed are optional.
type Config struct {
	Camera    capture.Camera
	Pose      detector.Detector
	Hands     detector.Detector
	Face      detector.Detector
	Presenter Presenter

	Style        render.Style
	CanvasWidth  int
	CanvasHeight int

	Store *store.Store
	Feed  *server.Feed
	Log   *logrus.Logger
}

// App runs the tracking loop: one frame in, two images out, every
// iteration, until the quit key or a capture failure.
type App struct {
	config  Config
	overlay *render.OverlayRenderer
	model   *render.ModelRenderer
	log     *logrus.Logger
	stats   store.Stats
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.CanvasWidth <= 0 {
		config.CanvasWidth = 1280
	}
	if config.CanvasHeight <= 0 {
		config.CanvasHeight = 720
	}

	log := config.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &App{
		config:  config,
		overlay: render.NewOverlayRenderer(config.Style),
		model:   render.NewModelRenderer(config.CanvasWidth, config.CanvasHeight, config.Style),
		log:     log,
	}
}

// Run opens the camera and drives the frame loop until the quit key is
// pressed or the capture source fails. All long-lived handles are
// released before it returns, on every exit path.
func (a *App) Run() error {
	if err := a.config.Camera.Open(); err != nil {
		return err
	}
	defer a.closeAll()

	var sessionID string
	if a.config.Store != nil {
		id, err := a.config.Store.StartSession()
		if err != nil {
			a.log.WithError(err).Warn("session not recorded")
		} else {
			sessionID = id
		}
	}

	a.log.Info("tracking started")
	a.runLoop()
	a.log.WithField("frames", a.stats.Frames).Info("tracking stopped")

	if sessionID != "" {
		if err := a.config.Store.FinishSession(sessionID, a.stats); err != nil {
			a.log.WithError(err).Warn("session not finalized")
		}
	}

	return nil
}

// Stats returns the counters accumulated so far.
func (a *App) Stats() store.Stats {
	return a.stats
}

func (a *App) closeAll() {
	if err := a.config.Camera.Close(); err != nil {
		a.log.WithError(err).Warn("error closing camera")
	}
	for _, d := range []detector.Detector{a.config.Pose, a.config.Hands, a.config.Face} {
		if d == nil {
			continue
		}
		if err := d.Close(); err != nil {
			a.log.WithError(err).WithField("detector", d.Kind()).Warn("error closing detector")
		}
	}
	if a.config.Presenter != nil {
		if err := a.config.Presenter.Close(); err != nil {
			a.log.WithError(err).Warn("error closing windows")
		}
	}
}
