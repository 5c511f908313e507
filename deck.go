package cadence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultStepFrames is the animation length of a step that does not set
// animation_frames.
const defaultStepFrames = 60

// Step is one slide of a deck. Elements animate from progress 0 to 1 over
// Frames frames, then the step holds its final state until advanced.
type Step struct {
	Name     string    `json:"name" yaml:"name"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Elements []Element `json:"elements" yaml:"elements"`
	Frames   int       `json:"animation_frames" yaml:"animation_frames"`
	Notes    string    `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Transition names the step transition played when this step becomes
	// current: "slide_left", "slide_right", "zoom" or "fade". Empty means
	// the player's default.
	Transition string `json:"transition,omitempty" yaml:"transition,omitempty"`
}

type rawStep Step

func (s *Step) UnmarshalJSON(data []byte) error {
	r := rawStep{Frames: defaultStepFrames}
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*s = Step(r)
	s.normalize()
	return nil
}

func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	r := rawStep{Frames: defaultStepFrames}
	if err := value.Decode(&r); err != nil {
		return err
	}
	*s = Step(r)
	s.normalize()
	return nil
}

func (s *Step) normalize() {
	if s.Frames < 1 {
		debugf("step %q: animation_frames %d clamped to 1", s.Name, s.Frames)
		s.Frames = 1
	}
}

// Progress converts a frame index into animation progress 0..1. Frame 0 is
// progress 0; the last frame is progress 1. Indexes past the end hold at 1.
func (s *Step) Progress(frame int) float64 {
	if s.Frames <= 1 {
		return 1
	}
	return clamp01(float64(frame) / float64(s.Frames-1))
}

// Landing configures the deck's title screen.
type Landing struct {
	Title        string `json:"title" yaml:"title"`
	Subtitle     string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Tagline      string `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Welcome      string `json:"welcome_message,omitempty" yaml:"welcome_message,omitempty"`
	Footer       string `json:"footer,omitempty" yaml:"footer,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty" yaml:"primary_color,omitempty"`
	IconLeft     string `json:"icon_left,omitempty" yaml:"icon_left,omitempty"`
	IconRight    string `json:"icon_right,omitempty" yaml:"icon_right,omitempty"`
}

// Deck is a complete presentation: metadata, an optional landing screen and
// an ordered list of steps. The zero value is a valid empty deck.
type Deck struct {
	Name        string  `json:"name" yaml:"name"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string  `json:"author,omitempty" yaml:"author,omitempty"`
	Language    string  `json:"language,omitempty" yaml:"language,omitempty"`
	Version     string  `json:"version,omitempty" yaml:"version,omitempty"`
	Landing     Landing `json:"landing,omitempty" yaml:"landing,omitempty"`
	Steps       []Step  `json:"steps" yaml:"steps"`

	// ColorOverrides remaps theme color names for this deck,
	// e.g. {"primary": "#FF0000"}.
	ColorOverrides map[string]string `json:"color_overrides,omitempty" yaml:"color_overrides,omitempty"`
}

// StepIndex returns the index of the step with the given name, or -1.
func (d *Deck) StepIndex(name string) int {
	for i := range d.Steps {
		if d.Steps[i].Name == name {
			return i
		}
	}
	return -1
}

// TotalFrames is the frame count of the whole deck, all steps summed.
func (d *Deck) TotalFrames() int {
	total := 0
	for i := range d.Steps {
		total += d.Steps[i].Frames
	}
	return total
}

// DecodeDeck parses deck data. Format is chosen by the file extension of
// name: .yaml and .yml decode as YAML, anything else as JSON.
func DecodeDeck(name string, data []byte) (*Deck, error) {
	var d Deck
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("cadence: parse deck %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("cadence: parse deck %s: %w", name, err)
		}
	}
	return &d, nil
}

// ReadDeck loads a deck from a JSON or YAML file.
func ReadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cadence: read deck %s: %w", path, err)
	}
	return DecodeDeck(path, data)
}

// WriteDeck saves a deck to path, as YAML when the extension is .yaml or
// .yml and as indented JSON otherwise.
func WriteDeck(path string, d *Deck) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(d)
	default:
		data, err = json.MarshalIndent(d, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("cadence: encode deck %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cadence: write deck %s: %w", path, err)
	}
	return nil
}
