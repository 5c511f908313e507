package cadence

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Item is one entry of a composite element's item list (bullets, checklist
// rows, grid cells, stacked layers, flow steps, timeline events). The schema
// accepts either a bare string or an object, so Item decodes from both.
type Item struct {
	Text        string `json:"text,omitempty" yaml:"text,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Label returns the item's display text: Text if set, otherwise Title.
func (it Item) Label() string {
	if it.Text != "" {
		return it.Text
	}
	return it.Title
}

func (it *Item) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*it = Item{Text: s}
		return nil
	}
	type rawItem Item
	return json.Unmarshal(data, (*rawItem)(it))
}

func (it *Item) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*it = Item{Text: value.Value}
		return nil
	}
	type rawItem Item
	return value.Decode((*rawItem)(it))
}

// Message is one chat bubble of a conversation element.
type Message struct {
	Role    string `json:"role" yaml:"role"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Content string `json:"content" yaml:"content"`
}

// ScatterPoint is one point of a scatter_3d element.
type ScatterPoint struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Z     float64 `json:"z" yaml:"z"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// VectorArrow is one vector of a vector_3d element, drawn from the origin.
type VectorArrow struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Z     float64 `json:"z" yaml:"z"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Element is the declarative description of one drawable thing. A single
// flat struct covers every element type, discriminated by Type; unused
// fields stay at their zero value. Elements are immutable during a render
// call: the renderer reads them and writes only [RenderContext] values.
type Element struct {
	// Identity
	Type string `json:"type" yaml:"type"`

	// Placement, canvas 0..100 units
	Position Vec2    `json:"position" yaml:"position"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`

	// Timing
	Phase    string  `json:"animation_phase" yaml:"animation_phase"`
	Duration float64 `json:"duration" yaml:"duration"`
	Delay    float64 `json:"delay" yaml:"delay"`
	Speed    float64 `json:"speed" yaml:"speed"`
	Easing   string  `json:"easing" yaml:"easing"`

	// Motion
	Entry     string  `json:"entry_animation" yaml:"entry_animation"`
	Effect    string  `json:"continuous_effect" yaml:"continuous_effect"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Stagger   bool    `json:"stagger" yaml:"stagger"`
	Spacing   float64 `json:"spacing" yaml:"spacing"`

	// Shared content
	Text     string  `json:"content,omitempty" yaml:"content,omitempty"`
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	Label    string  `json:"label,omitempty" yaml:"label,omitempty"`
	Style    string  `json:"style,omitempty" yaml:"style,omitempty"`
	Color    string  `json:"color,omitempty" yaml:"color,omitempty"`
	FontSize float64 `json:"fontsize" yaml:"fontsize"`

	// Text family
	ShowCursor bool   `json:"show_cursor" yaml:"show_cursor"`
	Code       string `json:"code,omitempty" yaml:"code,omitempty"`
	Language   string `json:"language,omitempty" yaml:"language,omitempty"`
	Output     string `json:"output,omitempty" yaml:"output,omitempty"`

	// Counter
	Value    float64 `json:"value" yaml:"value"`
	Prefix   string  `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix   string  `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Decimals int     `json:"decimals" yaml:"decimals"`

	// Collections
	Items    []Item    `json:"items,omitempty" yaml:"items,omitempty"`
	Messages []Message `json:"messages,omitempty" yaml:"messages,omitempty"`
	Events   []Item    `json:"events,omitempty" yaml:"events,omitempty"`
	Steps    []Item    `json:"steps,omitempty" yaml:"steps,omitempty"`

	// Conversation bubble colors
	UserColor      string `json:"user_color,omitempty" yaml:"user_color,omitempty"`
	AssistantColor string `json:"assistant_color,omitempty" yaml:"assistant_color,omitempty"`

	// Comparison
	LeftTitle  string `json:"left_title,omitempty" yaml:"left_title,omitempty"`
	RightTitle string `json:"right_title,omitempty" yaml:"right_title,omitempty"`

	// Grid
	Rows       int     `json:"rows" yaml:"rows"`
	Cols       int     `json:"columns" yaml:"columns"`
	CellWidth  float64 `json:"cell_width" yaml:"cell_width"`
	CellHeight float64 `json:"cell_height" yaml:"cell_height"`

	// Stacked boxes
	BaseWidth     float64 `json:"base_width" yaml:"base_width"`
	BoxHeight     float64 `json:"box_height" yaml:"box_height"`
	WidthDecrease float64 `json:"width_decrease" yaml:"width_decrease"`

	// Connectors
	Start        Vec2    `json:"start" yaml:"start"`
	End          Vec2    `json:"end" yaml:"end"`
	HeadSize     float64 `json:"head_size" yaml:"head_size"`
	ArcHeight    float64 `json:"arc_height" yaml:"arc_height"`
	Direction    string  `json:"direction,omitempty" yaml:"direction,omitempty"`
	NumParticles int     `json:"num_particles" yaml:"num_particles"`
	Spread       float64 `json:"spread" yaml:"spread"`

	// Network diagram
	Layers          []int    `json:"layers,omitempty" yaml:"layers,omitempty"`
	LayerLabels     []string `json:"layer_labels,omitempty" yaml:"layer_labels,omitempty"`
	ShowConnections bool     `json:"show_connections" yaml:"show_connections"`

	// Meters
	Score        float64 `json:"score" yaml:"score"`
	Radius       float64 `json:"radius" yaml:"radius"`
	Current      float64 `json:"current" yaml:"current"`
	Total        float64 `json:"total" yaml:"total"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	CurrentValue float64 `json:"current_value" yaml:"current_value"`
	MinValue     float64 `json:"min_value" yaml:"min_value"`
	MaxValue     float64 `json:"max_value" yaml:"max_value"`

	// Weight comparison
	Before []float64 `json:"before_weights,omitempty" yaml:"before_weights,omitempty"`
	After  []float64 `json:"after_weights,omitempty" yaml:"after_weights,omitempty"`
	Labels []string  `json:"labels,omitempty" yaml:"labels,omitempty"`

	// 3D plots
	Points        []ScatterPoint `json:"points,omitempty" yaml:"points,omitempty"`
	Vectors       []VectorArrow  `json:"vectors,omitempty" yaml:"vectors,omitempty"`
	CameraElev    float64        `json:"camera_elev" yaml:"camera_elev"`
	CameraAzim    float64        `json:"camera_azim" yaml:"camera_azim"`
	RotateCamera  bool           `json:"rotate_camera" yaml:"rotate_camera"`
	RotationSpeed float64        `json:"camera_rotation_speed" yaml:"camera_rotation_speed"`
}

// elementDefaults sets the common defaults shared by every element type.
func elementDefaults(e *Element) {
	e.Position = Vec2{X: 50, Y: 50}
	e.Phase = PhaseEarly
	e.Duration = 1
	e.Speed = 1
	e.Easing = EasingInOut
	e.Entry = EntryNone
	e.Effect = EffectNone
	e.Frequency = 1
	e.Stagger = true
	e.Spacing = 5
}

// typeDefaults fills the scalar defaults for each built-in type. Sample
// content for empty collections is filled separately by fillContent, after
// decoding, so user-provided lists are never merged into the samples.
var typeDefaults = map[string]func(*Element){
	"text": func(e *Element) {
		e.Text = "Text"
		e.Width, e.Height = 15, 5
		e.FontSize = 14
	},
	"typewriter_text": func(e *Element) {
		e.Text = "Typing..."
		e.Width, e.Height = 20, 5
		e.FontSize = 14
		e.ShowCursor = true
	},
	"counter": func(e *Element) {
		e.Value = 1000
		e.FontSize = 24
		e.Width, e.Height = 15, 8
	},
	"code_block": func(e *Element) {
		e.Code = "# Example code\ndef hello():\n    print(\"Hello!\")"
		e.Language = "python"
		e.Width, e.Height = 30, 15
	},
	"code_execution": func(e *Element) {
		e.Code = "result = 2 + 2\nprint(result)"
		e.Output = "4"
		e.Width, e.Height = 30, 20
	},
	"box": func(e *Element) {
		e.Title = "Box Title"
		e.Text = "Content here"
		e.Width, e.Height = 20, 12
	},
	"comparison": func(e *Element) {
		e.LeftTitle, e.RightTitle = "Before", "After"
		e.Width, e.Height = 40, 20
	},
	"conversation": func(e *Element) {
		e.Width, e.Height = 35, 25
	},
	"bullet_list": func(e *Element) {
		e.Width, e.Height = 25, 18
	},
	"checklist": func(e *Element) {
		e.Width, e.Height = 25, 15
	},
	"timeline": func(e *Element) {
		e.Width, e.Height = 50, 15
	},
	"flow": func(e *Element) {
		e.Width, e.Height = 50, 12
	},
	"grid": func(e *Element) {
		e.Rows, e.Cols = 2, 2
		e.Width, e.Height = 35, 25
	},
	"stacked_boxes": func(e *Element) {
		e.Width, e.Height = 30, 25
		e.BoxHeight = 10
		e.WidthDecrease = 4
		e.Spacing = 12
	},
	"arrow": func(e *Element) {
		e.Start = Vec2{X: 30, Y: 50}
		e.End = Vec2{X: 70, Y: 50}
		e.Style = "simple"
		e.Width = 2
		e.HeadSize = 15
	},
	"arc_arrow": func(e *Element) {
		e.Start = Vec2{X: 30, Y: 50}
		e.End = Vec2{X: 70, Y: 50}
		e.ArcHeight = 15
		e.Direction = "up"
		e.Width = 2
	},
	"particle_flow": func(e *Element) {
		e.Start = Vec2{X: 20, Y: 50}
		e.End = Vec2{X: 80, Y: 50}
		e.NumParticles = 20
		e.Spread = 0.5
		e.Width, e.Height = 60, 8
	},
	"neural_network": func(e *Element) {
		e.Width, e.Height = 40, 30
		e.ShowConnections = true
	},
	"similarity_meter": func(e *Element) {
		e.Score = 75
		e.Radius = 8
		e.Label = "Similarity"
		e.Width, e.Height = 18, 12
	},
	"progress_bar": func(e *Element) {
		e.Current, e.Total = 7, 10
		e.Label = "Progress"
		e.Width, e.Height = 30, 6
	},
	"weight_comparison": func(e *Element) {
		e.Width, e.Height = 35, 18
	},
	"parameter_slider": func(e *Element) {
		e.Label = "Temperature"
		e.Description = "Controls randomness"
		e.CurrentValue = 0.7
		e.MinValue, e.MaxValue = 0, 2
		e.Width, e.Height = 30, 10
	},
	"scatter_3d": func(e *Element) {
		e.CameraElev, e.CameraAzim = 20, 45
		e.RotationSpeed = 90
		e.Width, e.Height = 30, 25
	},
	"vector_3d": func(e *Element) {
		e.CameraElev, e.CameraAzim = 20, 45
		e.RotationSpeed = 90
		e.Width, e.Height = 30, 25
	},
	"qr_code": func(e *Element) {
		e.Text = "https://example.com"
		e.Width, e.Height = 20, 20
	},
}

// fillContent supplies sample content for collections that are still empty
// after decoding, mirroring the sample data the schema tooling seeds new
// elements with.
func (e *Element) fillContent() {
	switch e.Type {
	case "bullet_list":
		if len(e.Items) == 0 {
			e.Items = []Item{{Text: "First item"}, {Text: "Second item"}, {Text: "Third item"}}
		}
	case "checklist":
		if len(e.Items) == 0 {
			e.Items = []Item{{Text: "Task completed"}, {Text: "Another task"}, {Text: "Final task"}}
		}
	case "conversation":
		if len(e.Messages) == 0 {
			e.Messages = []Message{
				{Role: "user", Content: "Hello, how are you?"},
				{Role: "assistant", Content: "I am doing well, thanks!"},
			}
		}
	case "timeline":
		if len(e.Events) == 0 {
			e.Events = []Item{
				{Date: "2023", Title: "Started"},
				{Date: "2024", Title: "Progress"},
				{Date: "2025", Title: "Complete"},
			}
		}
	case "flow":
		if len(e.Steps) == 0 {
			e.Steps = []Item{{Title: "Input"}, {Title: "Process"}, {Title: "Output"}}
		}
	case "grid":
		if len(e.Items) == 0 {
			e.Items = []Item{
				{Title: "Cell 1", Description: "First"},
				{Title: "Cell 2", Description: "Second"},
				{Title: "Cell 3", Description: "Third"},
				{Title: "Cell 4", Description: "Fourth"},
			}
		}
	case "stacked_boxes":
		if len(e.Items) == 0 {
			e.Items = []Item{
				{Title: "Layer 1", Color: "primary"},
				{Title: "Layer 2", Color: "secondary"},
				{Title: "Layer 3", Color: "accent"},
			}
		}
	case "neural_network":
		if len(e.Layers) == 0 {
			e.Layers = []int{3, 5, 5, 2}
		}
		if len(e.LayerLabels) == 0 {
			e.LayerLabels = []string{"Input", "Hidden 1", "Hidden 2", "Output"}
		}
	case "weight_comparison":
		if len(e.Before) == 0 {
			e.Before = []float64{0.3, 0.5, 0.2}
		}
		if len(e.After) == 0 {
			e.After = []float64{0.7, 0.8, 0.6}
		}
		if len(e.Labels) == 0 {
			e.Labels = []string{"Weight A", "Weight B", "Weight C"}
		}
	case "scatter_3d":
		if len(e.Points) == 0 {
			e.Points = []ScatterPoint{
				{X: 2, Y: 3, Z: 1, Color: "accent"},
				{X: -2, Y: 1, Z: 3, Color: "primary"},
				{X: 1, Y: -2, Z: 2, Color: "secondary"},
				{X: -1, Y: -1, Z: -2, Color: "warning"},
				{X: 3, Y: 2, Z: -1, Color: "success"},
			}
		}
	case "vector_3d":
		if len(e.Vectors) == 0 {
			e.Vectors = []VectorArrow{
				{X: 4, Y: 2, Z: 3, Color: "warning", Label: "v1"},
				{X: -3, Y: 4, Z: 1, Color: "success", Label: "v2"},
				{X: 2, Y: -2, Z: 4, Color: "accent", Label: "v3"},
			}
		}
	}
}

// normalize clamps timing fields to their valid ranges. Invalid values come
// from hand-edited deck files; they degrade rather than fail.
func (e *Element) normalize() {
	if e.Duration < 0 {
		debugf("element %q: negative duration %v clamped to 0", e.Type, e.Duration)
		e.Duration = 0
	}
	if e.Delay < 0 {
		debugf("element %q: negative delay %v clamped to 0", e.Type, e.Delay)
		e.Delay = 0
	}
	if e.Speed < 0 {
		debugf("element %q: negative speed %v clamped to 0", e.Type, e.Speed)
		e.Speed = 0
	}
}

// NewElement creates an element of the given type with all defaults applied,
// including sample content, ready to place on a step.
func NewElement(typ string) *Element {
	e := &Element{Type: typ}
	elementDefaults(e)
	if fn, ok := typeDefaults[typ]; ok {
		fn(e)
	}
	e.fillContent()
	return e
}

// rawElement breaks unmarshal recursion while keeping field tags.
type rawElement Element

func (e *Element) UnmarshalJSON(data []byte) error {
	// Decode the type first so type-specific defaults can be laid down
	// before the full decode; explicitly written zeros then survive.
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	r := rawElement{Type: probe.Type}
	elementDefaults((*Element)(&r))
	if fn, ok := typeDefaults[probe.Type]; ok {
		fn((*Element)(&r))
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*e = Element(r)
	e.fillContent()
	e.normalize()
	return nil
}

func (e *Element) UnmarshalYAML(value *yaml.Node) error {
	var probe struct {
		Type string `yaml:"type"`
	}
	if err := value.Decode(&probe); err != nil {
		return err
	}
	r := rawElement{Type: probe.Type}
	elementDefaults((*Element)(&r))
	if fn, ok := typeDefaults[probe.Type]; ok {
		fn((*Element)(&r))
	}
	if err := value.Decode(&r); err != nil {
		return err
	}
	*e = Element(r)
	e.fillContent()
	e.normalize()
	return nil
}
