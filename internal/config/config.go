// Package config loads tracker settings from an optional YAML file and
// the environment. The program takes no command-line arguments; all
// tuning happens here.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full tracker configuration.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Detector DetectorConfig `yaml:"detector"`
	Canvas   CanvasConfig   `yaml:"canvas"`
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
}

// CameraConfig selects the capture device and requested format.
type CameraConfig struct {
	Device int `yaml:"device"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// DetectorConfig holds the detection knobs, fixed for the whole run.
type DetectorConfig struct {
	MinDetectionConfidence float64 `yaml:"min_detection_confidence"`
	MinTrackingConfidence  float64 `yaml:"min_tracking_confidence"`
	MaxHands               int     `yaml:"max_hands"`
	ModelComplexity        int     `yaml:"model_complexity"`
	RefineLandmarks        bool    `yaml:"refine_landmarks"`
}

// CanvasConfig sizes the digital model canvas.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ServerConfig enables the HTTP monitor when Addr is non-empty.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StoreConfig locates the session database. An empty path means the
// default location under the user's home directory.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Camera: CameraConfig{
			Width:  1280,
			Height: 720,
			FPS:    30,
		},
		Detector: DetectorConfig{
			MinDetectionConfidence: 0.5,
			MinTrackingConfidence:  0.5,
			MaxHands:               2,
			ModelComplexity:        1,
			RefineLandmarks:        true,
		},
		Canvas: CanvasConfig{
			Width:  1280,
			Height: 720,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// if it exists, then environment overrides. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	// .env is optional and only seeds the process environment
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("NATYAM_CAMERA_DEVICE"); v != "" {
		if device, err := strconv.Atoi(v); err == nil {
			c.Camera.Device = device
		}
	}
	if v := os.Getenv("NATYAM_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("NATYAM_DB_PATH"); v != "" {
		c.Store.Path = v
	}
}
