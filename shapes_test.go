package cadence

import "testing"

// --- box ---

func TestDrawBox(t *testing.T) {
	e := NewElement("box")
	rec := recordDraw(drawBox, e, fullCtx())

	if rec.Count(OpRect) != 2 {
		t.Fatalf("rects = %d, want fill + edge", rec.Count(OpRect))
	}
	fill := rec.Ops[0]
	assertNear(t, "fill X", fill.X1, 40)
	assertNear(t, "fill Y", fill.Y1, 44)
	assertNear(t, "fill W", fill.W, 20)
	assertNear(t, "fill H", fill.H, 12)
	if !fill.Style.Fill {
		t.Error("background rect not filled")
	}
	if rec.Ops[1].Style.Color != DefaultTheme().Color("primary") {
		t.Error("edge color did not fall back to primary")
	}

	texts := rec.TextOps()
	if len(texts) != 2 {
		t.Fatalf("texts = %d, want title + content", len(texts))
	}
	if texts[0].Text != "Box Title" || !texts[0].TextStyle.Bold {
		t.Errorf("title op = %q bold=%v", texts[0].Text, texts[0].TextStyle.Bold)
	}
	assertNear(t, "title Y", texts[0].Y1, 53)
	if texts[1].Text != "Content here" {
		t.Errorf("content = %q", texts[1].Text)
	}
	assertNear(t, "content Y", texts[1].Y1, 48)
}

func TestDrawBoxOptionalTexts(t *testing.T) {
	e := NewElement("box")
	e.Title = ""
	rec := recordDraw(drawBox, e, fullCtx())
	if len(rec.Texts()) != 1 {
		t.Errorf("texts without title = %d, want 1", len(rec.Texts()))
	}

	e.Text = ""
	rec = recordDraw(drawBox, e, fullCtx())
	if len(rec.Texts()) != 0 {
		t.Errorf("texts without title or content = %d, want 0", len(rec.Texts()))
	}
}

func TestDrawBoxCustomColor(t *testing.T) {
	e := NewElement("box")
	e.Color = "accent"
	rec := recordDraw(drawBox, e, fullCtx())
	want := DefaultTheme().Color("accent")
	if rec.Ops[1].Style.Color != want {
		t.Error("edge did not use the element color")
	}
	if rec.TextOps()[0].TextStyle.Color != want {
		t.Error("title did not use the element color")
	}
}

// --- comparison ---

func TestDrawComparison(t *testing.T) {
	e := NewElement("comparison")
	rec := recordDraw(drawComparison, e, fullCtx())

	if rec.Count(OpRect) != 4 {
		t.Fatalf("rects = %d, want two panels with edges", rec.Count(OpRect))
	}
	// Left panel in warning, right panel in success.
	left := rec.Ops[0]
	assertNear(t, "left X", left.X1, 30)
	assertNear(t, "left W", left.W, 18)
	right := rec.Ops[2]
	assertNear(t, "right X", right.X1, 52)
	th := DefaultTheme()
	if rec.Ops[1].Style.Color != th.Color("warning") {
		t.Error("left edge not warning")
	}
	if rec.Ops[3].Style.Color != th.Color("success") {
		t.Error("right edge not success")
	}

	texts := rec.TextOps()
	if len(texts) != 2 {
		t.Fatalf("texts = %d, want 2 titles", len(texts))
	}
	if texts[0].Text != "Before" || texts[1].Text != "After" {
		t.Errorf("titles = %q, %q", texts[0].Text, texts[1].Text)
	}
	assertNear(t, "left title X", texts[0].X1, 40)
	assertNear(t, "right title X", texts[1].X1, 60)
}

func TestDrawComparisonTruncatesTitles(t *testing.T) {
	e := NewElement("comparison")
	e.LeftTitle = "Unsupervised Learning"
	rec := recordDraw(drawComparison, e, fullCtx())
	if got := rec.Texts()[0]; got != "Unsupervis" {
		t.Errorf("left title = %q, want truncated to 10 runes", got)
	}
}

// --- conversation ---

func TestDrawConversation(t *testing.T) {
	e := NewElement("conversation")
	e.Stagger = false
	rec := recordDraw(drawConversation, e, fullCtx())

	// One bubble plus name and content per message.
	if rec.Count(OpRect) != 2 {
		t.Fatalf("bubbles = %d, want 2", rec.Count(OpRect))
	}
	if len(rec.Texts()) != 4 {
		t.Fatalf("texts = %d, want name + content per message", len(rec.Texts()))
	}

	userBubble, assistantBubble := rec.Ops[0], rec.Ops[3]
	if userCenter := userBubble.X1 + userBubble.W/2; userCenter >= 50 {
		t.Errorf("user bubble center %v, want left of the element", userCenter)
	}
	if aCenter := assistantBubble.X1 + assistantBubble.W/2; aCenter <= 50 {
		t.Errorf("assistant bubble center %v, want right of the element", aCenter)
	}
	assertNear(t, "bubble alpha", userBubble.Style.Alpha, 0.4)

	texts := rec.Texts()
	if texts[0] != "User" || texts[2] != "Assistant" {
		t.Errorf("role names = %q, %q, want capitalized fallbacks", texts[0], texts[2])
	}
}

func TestDrawConversationExplicitName(t *testing.T) {
	e := NewElement("conversation")
	e.Stagger = false
	e.Messages = []Message{{Role: "user", Name: "Sam", Content: "hi"}}
	rec := recordDraw(drawConversation, e, fullCtx())
	if got := rec.Texts()[0]; got != "Sam" {
		t.Errorf("name = %q, want %q", got, "Sam")
	}
}

func TestDrawConversationInputRoleOnLeft(t *testing.T) {
	e := NewElement("conversation")
	e.Stagger = false
	e.Messages = []Message{{Role: "Input", Content: "data"}}
	rec := recordDraw(drawConversation, e, fullCtx())
	bubble := rec.Ops[0]
	if center := bubble.X1 + bubble.W/2; center >= 50 {
		t.Errorf("Input bubble center %v, want left side", center)
	}
}

func TestDrawConversationStagger(t *testing.T) {
	e := NewElement("conversation")
	ctx := fullCtx()
	ctx.Alpha = 0.5
	rec := recordDraw(drawConversation, e, ctx)
	// Mid-reveal only the first message has arrived.
	if rec.Count(OpRect) != 1 {
		t.Errorf("bubbles at half alpha = %d, want 1", rec.Count(OpRect))
	}
}

func TestDrawConversationCapsMessages(t *testing.T) {
	e := NewElement("conversation")
	e.Stagger = false
	e.Messages = nil
	for i := 0; i < 7; i++ {
		e.Messages = append(e.Messages, Message{Role: "user", Content: "m"})
	}
	rec := recordDraw(drawConversation, e, fullCtx())
	if rec.Count(OpRect) != 5 {
		t.Errorf("bubbles = %d, want capped at 5", rec.Count(OpRect))
	}
}

func TestDrawConversationEmpty(t *testing.T) {
	e := &Element{Type: "conversation", Width: 35, Height: 25}
	rec := recordDraw(drawConversation, e, fullCtx())
	if len(rec.Ops) != 0 {
		t.Errorf("ops = %d, want nothing for no messages", len(rec.Ops))
	}
}

// --- stacked boxes ---

func TestDrawStackedBoxes(t *testing.T) {
	e := NewElement("stacked_boxes")
	e.Stagger = false
	rec := recordDraw(drawStackedBoxes, e, fullCtx())

	if rec.Count(OpRect) != 6 {
		t.Fatalf("rects = %d, want fill + edge per layer", rec.Count(OpRect))
	}
	texts := rec.Texts()
	if len(texts) != 3 {
		t.Fatalf("labels = %d, want 3", len(texts))
	}
	if texts[0] != "Layer 1" || texts[2] != "Layer 3" {
		t.Errorf("labels = %q ... %q", texts[0], texts[2])
	}

	// Widths shrink by WidthDecrease per layer, stacking bottom-up.
	assertNear(t, "layer 1 W", rec.Ops[0].W, 30)
	assertNear(t, "layer 2 W", rec.Ops[2].W, 26)
	assertNear(t, "layer 3 W", rec.Ops[4].W, 22)
	y0 := rec.Ops[0].Y1 + 5
	y2 := rec.Ops[4].Y1 + 5
	assertNear(t, "layer 1 center Y", y0, 62)
	assertNear(t, "layer 3 center Y", y2, 38)

	if rec.Ops[1].Style.Color != DefaultTheme().Color("primary") {
		t.Error("layer 1 edge did not use its item color")
	}
}

func TestDrawStackedBoxesBaseWidth(t *testing.T) {
	e := NewElement("stacked_boxes")
	e.Stagger = false
	e.BaseWidth = 40
	rec := recordDraw(drawStackedBoxes, e, fullCtx())
	assertNear(t, "base width", rec.Ops[0].W, 40)
}

func TestDrawStackedBoxesDescription(t *testing.T) {
	e := NewElement("stacked_boxes")
	e.Stagger = false
	e.Items = []Item{{Title: "Apps", Description: "User facing"}}
	rec := recordDraw(drawStackedBoxes, e, fullCtx())
	texts := rec.TextOps()
	if len(texts) != 2 {
		t.Fatalf("texts = %d, want label + description", len(texts))
	}
	if texts[1].Text != "User facing" {
		t.Errorf("description = %q", texts[1].Text)
	}
	assertNear(t, "description alpha", texts[1].TextStyle.Alpha, 0.8)
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"user":      "User",
		"assistant": "Assistant",
		"x":         "X",
		"":          "",
	}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
