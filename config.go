package cadence

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// PlayerOptions configures a playback window. The zero value is usable;
// empty fields fall back to defaults when the player starts.
type PlayerOptions struct {
	Title             string  `yaml:"title"`              // window title; empty uses the deck title
	Width             int     `yaml:"width"`              // window width, default 1280
	Height            int     `yaml:"height"`             // window height, default 800
	Fullscreen        bool    `yaml:"fullscreen"`         // start fullscreen
	Transition        string  `yaml:"transition"`         // default step transition, default fade
	TransitionSeconds float64 `yaml:"transition_seconds"` // step transition length, default 0.6
	ShowFPS           bool    `yaml:"show_fps"`           // start with the FPS overlay on
	PhaseMarkers      bool    `yaml:"phase_markers"`      // start with the phase ruler on
	SkipLanding       bool    `yaml:"skip_landing"`       // jump straight to the first step
	StartStep         string  `yaml:"start_step"`         // step name to open at
}

func (o PlayerOptions) withDefaults() PlayerOptions {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.Transition == "" {
		o.Transition = TransitionFade
	}
	if o.TransitionSeconds <= 0 {
		o.TransitionSeconds = defaultTransitionSeconds
	}
	return o
}

// ExportOptions configures a PNG frame export. The zero value is usable;
// empty fields fall back to defaults when the export starts.
type ExportOptions struct {
	Dir          string   `yaml:"dir"`           // output directory, default "frames"
	Width        int      `yaml:"width"`         // frame width, default 1280
	Height       int      `yaml:"height"`        // frame height, default 800
	FPS          int      `yaml:"fps"`           // playback rate the frames are meant for, default 30
	Workers      int      `yaml:"workers"`       // parallel render workers, default NumCPU
	Transition   string   `yaml:"transition"`    // default step transition; empty plays none
	PhaseMarkers bool     `yaml:"phase_markers"` // draw the phase ruler on every frame
	Steps        []string `yaml:"steps"`         // subset of step names; empty exports all

	// Progress, when set, is called after every written frame. Workers call
	// it concurrently; it must be safe for parallel use.
	Progress func(done, total int) `yaml:"-"`
}

func (o ExportOptions) withDefaults() ExportOptions {
	if o.Dir == "" {
		o.Dir = "frames"
	}
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.FPS <= 0 {
		o.FPS = 30
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}

// LoadPlayerOptions reads player options from a YAML file.
func LoadPlayerOptions(path string) (PlayerOptions, error) {
	var o PlayerOptions
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("cadence: read options %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("cadence: parse options %s: %w", path, err)
	}
	return o, nil
}

// LoadExportOptions reads export options from a YAML file.
func LoadExportOptions(path string) (ExportOptions, error) {
	var o ExportOptions
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("cadence: read options %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("cadence: parse options %s: %w", path, err)
	}
	return o, nil
}
