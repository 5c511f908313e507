package cadence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scriptDeck builds a deck whose text content differs per step and per
// phase, so checkpoints can probe what is visible when.
func scriptDeck() *Deck {
	early := *NewElement("text")
	early.Text = "early words"
	early.Phase = PhaseImmediate
	late := *NewElement("text")
	late.Text = "late words"
	late.Phase = PhaseFinal

	other := *NewElement("text")
	other.Text = "second step"

	return &Deck{
		Name: "scripted",
		Steps: []Step{
			{Name: "intro", Title: "Intro", Frames: 10, Elements: []Element{early, late}},
			{Name: "outro", Title: "Outro", Frames: 10, Elements: []Element{other}},
		},
	}
}

func TestLoadScript(t *testing.T) {
	script, err := LoadScript([]byte(`{"checks": [{"step": "intro", "progress": 1}]}`))
	if err != nil {
		t.Fatalf("LoadScript() = %v", err)
	}
	if len(script.checks) != 1 {
		t.Errorf("checks = %d, want 1", len(script.checks))
	}
}

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript([]byte(`{not json`)); err == nil {
		t.Error("LoadScript(bad json) = nil, want error")
	}
	_, err := LoadScript([]byte(`{"checks": []}`))
	if err == nil {
		t.Fatal("LoadScript(no checks) = nil, want error")
	}
	if !strings.Contains(err.Error(), "no checks") {
		t.Errorf("error = %v, want no-checks message", err)
	}
}

func TestScriptPassingCheckpoints(t *testing.T) {
	script, err := LoadScript([]byte(`{"checks": [
		{"step": "intro", "progress": 1, "min_ops": 2, "texts": ["early words", "late words"]},
		{"step": "intro", "progress": 0.3, "texts": ["early words"], "no_texts": ["late words"]},
		{"index": 1, "progress": 1, "texts": ["second step"]}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	results := script.Run(scriptDeck(), nil)
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, res := range results {
		if res.Failed() {
			t.Errorf("checkpoint %d failed: %v", i, res.Failures)
		}
	}
	if results[2].Step != "outro" {
		t.Errorf("index checkpoint resolved step %q, want outro", results[2].Step)
	}
}

func TestScriptFailingCheckpoints(t *testing.T) {
	script, err := LoadScript([]byte(`{"checks": [
		{"step": "intro", "progress": 0.3, "texts": ["late words"]},
		{"step": "intro", "progress": 1, "no_texts": ["late words"]},
		{"step": "intro", "progress": 1, "min_ops": 100000}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	results := script.Run(scriptDeck(), nil)

	if !results[0].Failed() || !strings.Contains(results[0].Failures[0], "not drawn") {
		t.Errorf("missing text checkpoint: %v", results[0].Failures)
	}
	if !results[1].Failed() || !strings.Contains(results[1].Failures[0], "too early") {
		t.Errorf("banned text checkpoint: %v", results[1].Failures)
	}
	if !results[2].Failed() || !strings.Contains(results[2].Failures[0], "draw ops") {
		t.Errorf("min ops checkpoint: %v", results[2].Failures)
	}
}

func TestScriptStepNotFound(t *testing.T) {
	script, err := LoadScript([]byte(`{"checks": [
		{"step": "ghost", "progress": 1},
		{"index": 99, "progress": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	results := script.Run(scriptDeck(), nil)
	if !results[0].Failed() || results[0].Step != "ghost" {
		t.Errorf("name miss = %+v, want failure keeping the name", results[0])
	}
	if !results[1].Failed() || results[1].Step != "#99" {
		t.Errorf("index miss = %+v, want failure with #index reference", results[1])
	}
}

func TestScriptNilDeck(t *testing.T) {
	script, err := LoadScript([]byte(`{"checks": [{"index": 0, "progress": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	results := script.Run(nil, nil)
	if !results[0].Failed() {
		t.Error("checkpoint against nil deck passed, want step-not-found failure")
	}
}

func TestScriptGlobalDefaultsToProgress(t *testing.T) {
	var globals []float64
	r := NewRenderer(nil)
	r.Register("probe", func(_ *Renderer, _ Surface, _ *Element, ctx RenderContext) {
		globals = append(globals, ctx.Global)
	})
	deck := &Deck{Steps: []Step{
		{Name: "s", Frames: 10, Elements: []Element{probeElement(50, 50)}},
	}}

	script, err := LoadScript([]byte(`{"checks": [
		{"index": 0, "progress": 0.5},
		{"index": 0, "progress": 0.5, "global": 3.25}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	script.Run(deck, r)
	if len(globals) != 2 {
		t.Fatalf("probe invocations = %d, want 2", len(globals))
	}
	assertNear(t, "effect clock defaults to progress", globals[0], 0.5)
	assertNear(t, "explicit effect clock", globals[1], 3.25)
}

func TestRunScriptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scrub.json")
	data := `{"checks": [{"step": "intro", "progress": 1, "texts": ["early words"]}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := RunScriptFile(path, scriptDeck())
	if err != nil {
		t.Fatalf("RunScriptFile() = %v", err)
	}
	if len(results) != 1 || results[0].Failed() {
		t.Errorf("results = %+v, want one passing checkpoint", results)
	}
}

func TestRunScriptFileErrors(t *testing.T) {
	if _, err := RunScriptFile(filepath.Join(t.TempDir(), "nope.json"), scriptDeck()); err == nil {
		t.Error("RunScriptFile(missing) = nil, want error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := RunScriptFile(path, scriptDeck()); err == nil {
		t.Error("RunScriptFile(bad json) = nil, want error")
	}
}
