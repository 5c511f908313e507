package cadence

import "testing"

func TestRecordSurfaceCaptures(t *testing.T) {
	r := NewRecordSurface()
	r.Clear(ColorWhite)
	r.Line(0, 0, 10, 10, Style{Alpha: 1, Width: 2})
	r.Rect(5, 5, 20, 10, Style{Alpha: 1, Fill: true})
	r.Circle(50, 50, 3, Style{Alpha: 0.5})
	r.Text(10, 90, "hello", TextStyle{Alpha: 1, Size: 14})

	if len(r.Ops) != 5 {
		t.Fatalf("ops = %d, want 5", len(r.Ops))
	}
	if r.Ops[0].Type != OpClear {
		t.Errorf("Ops[0].Type = %d, want OpClear", r.Ops[0].Type)
	}
	if r.Count(OpLine) != 1 || r.Count(OpText) != 1 {
		t.Errorf("counts: lines = %d, texts = %d", r.Count(OpLine), r.Count(OpText))
	}
	got := r.Texts()
	if len(got) != 1 || got[0] != "hello" {
		t.Errorf("Texts() = %v", got)
	}
	rect := r.Ops[2]
	if rect.X1 != 5 || rect.Y1 != 5 || rect.W != 20 || rect.H != 10 {
		t.Errorf("rect op = %+v", rect)
	}
	if !rect.Style.Fill {
		t.Error("rect fill flag lost")
	}
}

func TestRecordSurfaceCopiesPoints(t *testing.T) {
	r := NewRecordSurface()
	buf := []Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	r.Polyline(buf, Style{Alpha: 1})
	buf[0] = Vec2{X: 99, Y: 99}
	if r.Ops[0].Points[0].X != 1 {
		t.Error("recorded points alias the caller's buffer")
	}
}

func TestRecordSurfaceReset(t *testing.T) {
	r := NewRecordSurface()
	r.Line(0, 0, 1, 1, Style{Alpha: 1})
	r.Reset()
	if len(r.Ops) != 0 {
		t.Fatalf("ops after reset = %d", len(r.Ops))
	}
	r.Circle(1, 1, 1, Style{Alpha: 1})
	if len(r.Ops) != 1 || r.Ops[0].Type != OpCircle {
		t.Errorf("ops after reuse = %+v", r.Ops)
	}
}

func TestRecordSurfaceReplay(t *testing.T) {
	src := NewRecordSurface()
	src.Clear(ColorWhite)
	src.Polygon([]Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, Style{Alpha: 1, Fill: true})
	src.Polyline([]Vec2{{X: 0, Y: 0}, {X: 2, Y: 2}}, Style{Alpha: 1})
	src.Text(3, 4, "replayed", TextStyle{Alpha: 1})

	dst := NewRecordSurface()
	src.Replay(dst)
	if len(dst.Ops) != len(src.Ops) {
		t.Fatalf("replayed ops = %d, want %d", len(dst.Ops), len(src.Ops))
	}
	for i := range src.Ops {
		if dst.Ops[i].Type != src.Ops[i].Type {
			t.Errorf("op %d type = %d, want %d", i, dst.Ops[i].Type, src.Ops[i].Type)
		}
	}
	if dst.Ops[3].Text != "replayed" {
		t.Errorf("text op = %+v", dst.Ops[3])
	}
}
