package cadence

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// frameJob is one frame of the deck, flattened for the worker pool.
type frameJob struct {
	step     *Step
	path     string
	progress float64
	global   float64
	tr       TransitionState
}

// Exporter renders every frame of a deck to numbered PNG files, ready for
// assembly into a video:
//
//	ffmpeg -framerate 30 -i frames/mydeck_%05d.png -pix_fmt yuv420p mydeck.mp4
//
// The file prefix is the sanitized deck name and the frame counter runs
// over the whole deck. Workers render in parallel, each with its own
// renderer and surface; the deck is shared read-only.
type Exporter struct {
	deck *Deck
	opts ExportOptions
}

// NewExporter builds an exporter for the deck. Zero-value options fall back
// to defaults, see [ExportOptions].
func NewExporter(deck *Deck, opts ExportOptions) *Exporter {
	if deck == nil {
		deck = &Deck{}
	}
	return &Exporter{deck: deck, opts: opts.withDefaults()}
}

// Export renders all frames and returns the number of files written. The
// first render or file error aborts the export; frames already queued on
// other workers may still finish writing.
func (x *Exporter) Export() (int, error) {
	jobs := x.frameJobs()
	if len(jobs) == 0 {
		return 0, fmt.Errorf("cadence: export: deck %q has no frames", x.deck.Name)
	}
	if err := os.MkdirAll(x.opts.Dir, 0o755); err != nil {
		return 0, fmt.Errorf("cadence: export: mkdir %s: %w", x.opts.Dir, err)
	}

	theme := DefaultTheme().WithOverrides(x.deck.ColorOverrides)
	workers := x.opts.Workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var g errgroup.Group
	var done atomic.Int64
	queue := make(chan frameJob, len(jobs))
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			r := NewRenderer(theme)
			r.ShowPhaseMarkers = x.opts.PhaseMarkers
			surf := NewImageSurface(x.opts.Width, x.opts.Height)
			for job := range queue {
				if err := r.RenderTransition(surf, job.step, job.progress, job.global, job.tr); err != nil {
					return fmt.Errorf("cadence: export %s: %w", job.path, err)
				}
				if err := writePNG(job.path, surf.Image()); err != nil {
					return fmt.Errorf("cadence: export: %w", err)
				}
				if n := done.Add(1); x.opts.Progress != nil {
					x.opts.Progress(int(n), len(jobs))
				}
			}
			return nil
		})
	}
	for _, job := range jobs {
		queue <- job
	}
	close(queue)

	if err := g.Wait(); err != nil {
		return int(done.Load()), err
	}
	return int(done.Load()), nil
}

// frameJobs flattens the selected steps into per-frame render jobs. Step
// transitions play over the first frames of their step; the global clock
// runs in seconds over the whole deck so continuous effects never reset at
// step boundaries.
func (x *Exporter) frameJobs() []frameJob {
	var sel []*Step
	if len(x.opts.Steps) > 0 {
		for _, name := range x.opts.Steps {
			if i := x.deck.StepIndex(name); i >= 0 {
				sel = append(sel, &x.deck.Steps[i])
			} else {
				warnOncef("export:"+name, "export step %q not found, skipped", name)
			}
		}
	} else {
		for i := range x.deck.Steps {
			sel = append(sel, &x.deck.Steps[i])
		}
	}

	prefix := sanitizeLabel(x.deck.Name)
	secondsPerFrame := 1 / float64(x.opts.FPS)
	transFrames := int(defaultTransitionSeconds * float64(x.opts.FPS))

	var jobs []frameJob
	index := 0
	for _, s := range sel {
		frames := s.Frames
		if frames < 1 {
			frames = 1
		}
		kind := s.Transition
		if kind == "" {
			kind = x.opts.Transition
		}
		animate := kind != "" && kind != TransitionNone && transFrames > 0
		for f := 0; f < frames; f++ {
			tr := NoTransition
			if animate && f < transFrames {
				tr = StepTransition(kind, float64(f)/float64(transFrames))
			}
			jobs = append(jobs, frameJob{
				step:     s,
				path:     filepath.Join(x.opts.Dir, fmt.Sprintf("%s_%05d.png", prefix, index)),
				progress: s.Progress(f),
				global:   float64(index) * secondsPerFrame,
				tr:       tr,
			})
			index++
		}
	}
	return jobs
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "deck" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "deck"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
