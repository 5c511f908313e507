// mlintro is a complete presentation about how language models work, built
// entirely in code. It exercises most element types across eight steps.
// Run it to present in a window, or pass "export" to render PNG frames
// into ./frames instead.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/cadence"
)

const (
	windowTitle = "Cadence — Intro to Language Models"
	exportDir   = "frames"
	exportFPS   = 30
)

func main() {
	deck := buildDeck()

	if len(os.Args) > 1 && os.Args[1] == "export" {
		n, err := cadence.NewExporter(deck, cadence.ExportOptions{
			Dir:        exportDir,
			FPS:        exportFPS,
			Transition: cadence.TransitionFade,
			Progress: func(done, total int) {
				fmt.Printf("\rframe %d/%d", done, total)
			},
		}).Export()
		fmt.Println()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %d frames to %s/\n", n, exportDir)
		return
	}

	err := cadence.Run(deck, cadence.PlayerOptions{
		Title: windowTitle,
	})
	if err != nil {
		log.Fatal(err)
	}
}

func buildDeck() *cadence.Deck {
	return &cadence.Deck{
		Name:        "mlintro",
		Title:       "How Language Models Work",
		Description: "A visual walk through tokens, attention, training and sampling.",
		Author:      "cadence demo",
		Version:     "1.0",
		Landing: cadence.Landing{
			Title:    "How Language Models Work",
			Subtitle: "an animated tour in eight steps",
			Tagline:  "press space to begin",
			Welcome:  "Every frame you will see is a pure function of a progress value.",
			Footer:   "cadence demo deck",
		},
		ColorOverrides: map[string]string{
			"accent": "#F472B6",
		},
		Steps: []cadence.Step{
			welcomeStep(),
			tokenStep(),
			attentionStep(),
			trainingStep(),
			samplingStep(),
			embeddingStep(),
			chatStep(),
			wrapStep(),
		},
	}
}

// at positions an element, assigns its phase, and returns it by value for
// the step's element list.
func at(e *cadence.Element, x, y float64, phase string) cadence.Element {
	e.Position = cadence.Vec2{X: x, Y: y}
	e.Phase = phase
	return *e
}

func welcomeStep() cadence.Step {
	title := cadence.NewElement("text")
	title.Text = "A model is a next-word guesser"
	title.Style = "title"
	title.FontSize = 20

	typed := cadence.NewElement("typewriter_text")
	typed.Text = "The cat sat on the ___"
	typed.Speed = 1.2

	flow := cadence.NewElement("particle_flow")
	flow.Start = cadence.Vec2{X: 15, Y: 30}
	flow.End = cadence.Vec2{X: 85, Y: 30}
	flow.NumParticles = 30

	return cadence.Step{
		Name:   "welcome",
		Title:  "Next-Word Prediction",
		Frames: 90,
		Notes:  "Set the frame: everything downstream is prediction.",
		Elements: []cadence.Element{
			at(title, 50, 72, cadence.PhaseImmediate),
			at(typed, 50, 52, cadence.PhaseEarly),
			at(flow, 50, 30, cadence.PhaseLate),
		},
	}
}

func tokenStep() cadence.Step {
	intro := cadence.NewElement("text")
	intro.Text = "Text becomes numbers first"
	intro.Style = "title"

	pipeline := cadence.NewElement("flow")
	pipeline.Width = 70
	pipeline.Steps = []cadence.Item{
		{Title: "Text", Subtitle: "the cat sat"},
		{Title: "Tokens", Subtitle: "[464, 2368, 7731]"},
		{Title: "Vectors", Subtitle: "embeddings"},
	}

	code := cadence.NewElement("code_block")
	code.Code = "ids = tokenizer.encode(\n    \"the cat sat\")"
	code.Width = 34

	return cadence.Step{
		Name:       "tokens",
		Title:      "Tokenization",
		Frames:     80,
		Transition: cadence.TransitionSlideLeft,
		Elements: []cadence.Element{
			at(intro, 50, 78, cadence.PhaseImmediate),
			at(pipeline, 50, 55, cadence.PhaseEarly),
			at(code, 50, 24, cadence.PhaseMiddle),
		},
	}
}

func attentionStep() cadence.Step {
	net := cadence.NewElement("neural_network")
	net.Layers = []int{4, 6, 6, 3}
	net.LayerLabels = []string{"Tokens", "Attention", "MLP", "Logits"}
	net.Width, net.Height = 44, 34

	why := cadence.NewElement("bullet_list")
	why.Items = []cadence.Item{
		{Text: "Each token looks at all others"},
		{Text: "Relevance is learned, not coded"},
		{Text: "Layers refine the picture"},
	}

	loop := cadence.NewElement("arc_arrow")
	loop.Start = cadence.Vec2{X: 30, Y: 12}
	loop.End = cadence.Vec2{X: 70, Y: 12}
	loop.ArcHeight = 10

	return cadence.Step{
		Name:   "attention",
		Title:  "Attention Layers",
		Frames: 100,
		Notes:  "The network drawing staggers in layer by layer.",
		Elements: []cadence.Element{
			at(net, 30, 52, cadence.PhaseEarly),
			at(why, 74, 55, cadence.PhaseMiddle),
			at(loop, 50, 12, cadence.PhaseFinal),
		},
	}
}

func trainingStep() cadence.Step {
	weights := cadence.NewElement("weight_comparison")
	weights.Before = []float64{0.22, 0.61, 0.38, 0.8}
	weights.After = []float64{0.71, 0.34, 0.66, 0.45}
	weights.Labels = []string{"w1", "w2", "w3", "w4"}
	weights.Width = 40

	loss := cadence.NewElement("progress_bar")
	loss.Label = "Epochs"
	loss.Current, loss.Total = 3, 4

	tokens := cadence.NewElement("counter")
	tokens.Value = 15
	tokens.Suffix = "T tokens"
	tokens.FontSize = 22

	return cadence.Step{
		Name:       "training",
		Title:      "Training Updates Weights",
		Frames:     90,
		Transition: cadence.TransitionZoom,
		Elements: []cadence.Element{
			at(weights, 32, 50, cadence.PhaseEarly),
			at(tokens, 75, 62, cadence.PhaseMiddle),
			at(loss, 75, 32, cadence.PhaseLate),
		},
	}
}

func samplingStep() cadence.Step {
	temp := cadence.NewElement("parameter_slider")
	temp.Label = "Temperature"
	temp.CurrentValue = 0.7
	temp.MinValue, temp.MaxValue = 0, 2

	sides := cadence.NewElement("comparison")
	sides.LeftTitle = "Greedy"
	sides.RightTitle = "Sampled"
	sides.Width, sides.Height = 44, 16

	match := cadence.NewElement("similarity_meter")
	match.Score = 84
	match.Label = "Coherence"

	return cadence.Step{
		Name:   "sampling",
		Title:  "Picking the Next Token",
		Frames: 80,
		Elements: []cadence.Element{
			at(temp, 50, 74, cadence.PhaseImmediate),
			at(sides, 33, 40, cadence.PhaseMiddle),
			at(match, 76, 38, cadence.PhaseLate),
		},
	}
}

func embeddingStep() cadence.Step {
	cloud := cadence.NewElement("scatter_3d")
	cloud.Points = []cadence.ScatterPoint{
		{X: 2, Y: 2, Z: 2, Color: "accent"},
		{X: 2.4, Y: 1.6, Z: 2.2, Color: "accent"},
		{X: -2, Y: -1, Z: 1, Color: "primary"},
		{X: -2.5, Y: -1.4, Z: 0.6, Color: "primary"},
		{X: 1, Y: -3, Z: -1, Color: "warning"},
	}
	cloud.RotateCamera = true
	cloud.RotationSpeed = 40
	cloud.Width, cloud.Height = 36, 30

	axes := cadence.NewElement("vector_3d")
	axes.Vectors = []cadence.VectorArrow{
		{X: 3, Y: 1, Z: 2, Color: "success", Label: "king"},
		{X: 2.6, Y: 1.4, Z: 1.1, Color: "accent", Label: "queen"},
	}
	axes.Width, axes.Height = 30, 28

	caption := cadence.NewElement("text")
	caption.Text = "Similar meanings sit close together"

	return cadence.Step{
		Name:       "embeddings",
		Title:      "Meaning as Geometry",
		Frames:     120,
		Transition: cadence.TransitionSlideUp,
		Notes:      "Both plots share the rotating camera treatment.",
		Elements: []cadence.Element{
			at(cloud, 30, 52, cadence.PhaseEarly),
			at(axes, 73, 52, cadence.PhaseMiddle),
			at(caption, 50, 14, cadence.PhaseLate),
		},
	}
}

func chatStep() cadence.Step {
	convo := cadence.NewElement("conversation")
	convo.Messages = []cadence.Message{
		{Role: "user", Content: "Why is the sky blue?"},
		{Role: "assistant", Content: "Shorter wavelengths scatter more..."},
		{Role: "user", Content: "Shorter how?"},
	}
	convo.Width, convo.Height = 40, 34

	recipe := cadence.NewElement("checklist")
	recipe.Items = []cadence.Item{
		{Text: "Tokenize the chat"},
		{Text: "Predict one token"},
		{Text: "Append and repeat"},
	}

	return cadence.Step{
		Name:   "chat",
		Title:  "Chat is a Loop",
		Frames: 90,
		Elements: []cadence.Element{
			at(convo, 33, 48, cadence.PhaseEarly),
			at(recipe, 75, 50, cadence.PhaseMiddle),
		},
	}
}

func wrapStep() cadence.Step {
	stack := cadence.NewElement("stacked_boxes")
	stack.Items = []cadence.Item{
		{Title: "Applications", Color: "accent"},
		{Title: "Fine-tuning", Color: "secondary"},
		{Title: "Base model", Color: "primary"},
	}

	history := cadence.NewElement("timeline")
	history.Events = []cadence.Item{
		{Date: "2017", Title: "Attention"},
		{Date: "2020", Title: "Scaling"},
		{Date: "2024", Title: "Agents"},
	}
	history.Width = 56

	more := cadence.NewElement("qr_code")
	more.Text = "https://example.com/mlintro"
	more.Label = "Further reading"
	more.Width, more.Height = 16, 16

	return cadence.Step{
		Name:       "wrap",
		Title:      "Where This Goes",
		Frames:     90,
		Transition: cadence.TransitionFade,
		Elements: []cadence.Element{
			at(stack, 28, 55, cadence.PhaseEarly),
			at(history, 50, 20, cadence.PhaseMiddle),
			at(more, 78, 58, cadence.PhaseLate),
		},
	}
}
