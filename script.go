package cadence

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// scriptCheck is one checkpoint in a scrub script.
type scriptCheck struct {
	Step     string   `json:"step,omitempty"`     // step name; empty falls back to Index
	Index    int      `json:"index,omitempty"`    // step index, used when Step is empty
	Progress float64  `json:"progress"`           // animation progress to scrub to
	Global   float64  `json:"global,omitempty"`   // effect clock; zero means Progress
	MinOps   int      `json:"min_ops,omitempty"`  // fail when fewer draw ops recorded
	Texts    []string `json:"texts,omitempty"`    // substrings that must be drawn
	MaxTexts []string `json:"no_texts,omitempty"` // substrings that must not be drawn
}

// scrubScript is the top-level JSON structure for a scrub script.
type scrubScript struct {
	Checks []scriptCheck `json:"checks"`
}

// Script scrubs a deck through scripted checkpoints, rendering each one
// onto a recording surface and checking what was drawn. It is the headless
// counterpart of eyeballing the player: a CI job can load a script, run it
// against a deck and fail on missing content without opening a window.
type Script struct {
	checks []scriptCheck
}

// LoadScript parses a JSON scrub script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script scrubScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scrub script: %w", err)
	}
	if len(script.Checks) == 0 {
		return nil, fmt.Errorf("parse scrub script: no checks")
	}
	return &Script{checks: script.Checks}, nil
}

// CheckResult is the outcome of one checkpoint.
type CheckResult struct {
	Step     string   // resolved step name, or the raw reference if not found
	Progress float64  // progress the checkpoint rendered at
	Ops      int      // draw ops recorded
	Failures []string // empty when the checkpoint passed
}

// Failed reports whether the checkpoint missed an expectation.
func (c *CheckResult) Failed() bool {
	return len(c.Failures) > 0
}

// Run renders every checkpoint against the deck and returns one result per
// checkpoint, in script order. A nil renderer uses the default theme with
// the deck's color overrides applied.
func (sc *Script) Run(deck *Deck, r *Renderer) []CheckResult {
	if deck == nil {
		deck = &Deck{}
	}
	if r == nil {
		r = NewRenderer(DefaultTheme().WithOverrides(deck.ColorOverrides))
	}

	rec := NewRecordSurface()
	results := make([]CheckResult, 0, len(sc.checks))
	for _, check := range sc.checks {
		results = append(results, sc.runCheck(deck, r, rec, check))
	}
	return results
}

func (sc *Script) runCheck(deck *Deck, r *Renderer, rec *RecordSurface, check scriptCheck) CheckResult {
	res := CheckResult{Step: check.Step, Progress: check.Progress}

	idx := check.Index
	if check.Step != "" {
		idx = deck.StepIndex(check.Step)
	}
	if idx < 0 || idx >= len(deck.Steps) {
		if res.Step == "" {
			res.Step = fmt.Sprintf("#%d", check.Index)
		}
		res.Failures = append(res.Failures, "step not found")
		return res
	}
	step := &deck.Steps[idx]
	res.Step = step.Name

	global := check.Global
	if global == 0 {
		global = check.Progress
	}
	rec.Reset()
	r.RenderAt(rec, step, check.Progress, global)
	res.Ops = len(rec.Ops)

	if check.MinOps > 0 && res.Ops < check.MinOps {
		res.Failures = append(res.Failures, fmt.Sprintf("%d draw ops, want at least %d", res.Ops, check.MinOps))
	}
	drawn := rec.Texts()
	for _, want := range check.Texts {
		if !containsText(drawn, want) {
			res.Failures = append(res.Failures, fmt.Sprintf("text %q not drawn", want))
		}
	}
	for _, ban := range check.MaxTexts {
		if containsText(drawn, ban) {
			res.Failures = append(res.Failures, fmt.Sprintf("text %q drawn too early", ban))
		}
	}
	return res
}

// containsText reports whether any drawn string contains want as a
// substring.
func containsText(drawn []string, want string) bool {
	for _, s := range drawn {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

// RunScriptFile loads a JSON scrub script from disk and runs it against the
// deck with a default renderer. It returns the per-checkpoint results and
// an error only for unreadable or unparseable scripts; failed checkpoints
// are reported in the results, not as errors.
func RunScriptFile(path string, deck *Deck) ([]CheckResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cadence: script: read %s: %w", path, err)
	}
	script, err := LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("cadence: script %s: %w", path, err)
	}
	return script.Run(deck, nil), nil
}
