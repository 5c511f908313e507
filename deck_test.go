package cadence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleDeckJSON = `{
  "name": "demo",
  "title": "Demo Deck",
  "landing": {"title": "Welcome", "tagline": "Press SPACE"},
  "color_overrides": {"primary": "#FF0000"},
  "steps": [
    {
      "name": "intro",
      "title": "Introduction",
      "elements": [
        {"type": "text", "content": "Hello", "animation_phase": "immediate"},
        {"type": "counter", "value": 42}
      ]
    },
    {
      "name": "outro",
      "title": "The End",
      "animation_frames": 120,
      "elements": []
    }
  ]
}`

// --- Decoding ---

func TestDecodeDeckJSON(t *testing.T) {
	d, err := DecodeDeck("demo.json", []byte(sampleDeckJSON))
	if err != nil {
		t.Fatalf("DecodeDeck: %v", err)
	}
	if d.Name != "demo" || d.Title != "Demo Deck" {
		t.Errorf("Name, Title = %q, %q", d.Name, d.Title)
	}
	if d.Landing.Title != "Welcome" || d.Landing.Tagline != "Press SPACE" {
		t.Errorf("Landing = %+v", d.Landing)
	}
	if d.ColorOverrides["primary"] != "#FF0000" {
		t.Errorf("ColorOverrides = %v", d.ColorOverrides)
	}
	if len(d.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(d.Steps))
	}
	s := &d.Steps[0]
	if s.Frames != defaultStepFrames {
		t.Errorf("Steps[0].Frames = %d, want default %d", s.Frames, defaultStepFrames)
	}
	if len(s.Elements) != 2 {
		t.Fatalf("Steps[0] elements = %d, want 2", len(s.Elements))
	}
	if s.Elements[0].Phase != PhaseImmediate {
		t.Errorf("element phase = %q", s.Elements[0].Phase)
	}
	// Element defaults flow through the nested decode.
	assertNear(t, "element duration", s.Elements[0].Duration, 1)
	assertNear(t, "counter value", s.Elements[1].Value, 42)
	if d.Steps[1].Frames != 120 {
		t.Errorf("Steps[1].Frames = %d, want 120", d.Steps[1].Frames)
	}
}

func TestDecodeDeckYAML(t *testing.T) {
	raw := `
name: demo
title: Demo Deck
steps:
  - name: only
    elements:
      - type: text
        content: Hi
`
	d, err := DecodeDeck("demo.yaml", []byte(raw))
	if err != nil {
		t.Fatalf("DecodeDeck: %v", err)
	}
	if len(d.Steps) != 1 || d.Steps[0].Frames != defaultStepFrames {
		t.Fatalf("steps = %+v", d.Steps)
	}
	if d.Steps[0].Elements[0].Text != "Hi" {
		t.Errorf("element text = %q", d.Steps[0].Elements[0].Text)
	}
}

func TestDecodeDeckBadJSON(t *testing.T) {
	if _, err := DecodeDeck("x.json", []byte("{not json")); err == nil {
		t.Fatal("want error for malformed deck")
	}
}

func TestStepFramesClamped(t *testing.T) {
	d, err := DecodeDeck("x.json", []byte(`{"steps":[{"name":"s","animation_frames":0}]}`))
	if err != nil {
		t.Fatalf("DecodeDeck: %v", err)
	}
	if d.Steps[0].Frames != 1 {
		t.Errorf("Frames = %d, want clamped to 1", d.Steps[0].Frames)
	}
}

// --- Step progress ---

func TestStepProgress(t *testing.T) {
	s := Step{Frames: 91}
	assertNear(t, "frame 0", s.Progress(0), 0)
	assertNear(t, "frame 45", s.Progress(45), 0.5)
	assertNear(t, "frame 90", s.Progress(90), 1)
	assertNear(t, "past end", s.Progress(500), 1)

	one := Step{Frames: 1}
	assertNear(t, "single frame", one.Progress(0), 1)
}

// --- Lookup ---

func TestDeckStepIndex(t *testing.T) {
	d := &Deck{Steps: []Step{{Name: "a"}, {Name: "b"}}}
	if got := d.StepIndex("b"); got != 1 {
		t.Errorf("StepIndex(b) = %d, want 1", got)
	}
	if got := d.StepIndex("zzz"); got != -1 {
		t.Errorf("StepIndex(zzz) = %d, want -1", got)
	}
}

func TestDeckTotalFrames(t *testing.T) {
	d := &Deck{Steps: []Step{{Frames: 60}, {Frames: 120}, {Frames: 1}}}
	if got := d.TotalFrames(); got != 181 {
		t.Errorf("TotalFrames = %d, want 181", got)
	}
}

// --- File round trip ---

func TestReadWriteDeck(t *testing.T) {
	dir := t.TempDir()

	src, err := DecodeDeck("demo.json", []byte(sampleDeckJSON))
	if err != nil {
		t.Fatalf("DecodeDeck: %v", err)
	}

	for _, name := range []string{"deck.json", "deck.yaml"} {
		path := filepath.Join(dir, name)
		if err := WriteDeck(path, src); err != nil {
			t.Fatalf("WriteDeck(%s): %v", name, err)
		}
		got, err := ReadDeck(path)
		if err != nil {
			t.Fatalf("ReadDeck(%s): %v", name, err)
		}
		if got.Name != src.Name || len(got.Steps) != len(src.Steps) {
			t.Errorf("%s: round trip lost data: %+v", name, got)
		}
		if got.Steps[1].Frames != 120 {
			t.Errorf("%s: Steps[1].Frames = %d", name, got.Steps[1].Frames)
		}
	}
}

func TestReadDeckMissingFile(t *testing.T) {
	_, err := ReadDeck(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	// The underlying os error stays inspectable through the wrap.
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("error %v does not wrap *os.PathError", err)
	}
}
