package cadence

import (
	"image/color"
	"testing"
)

var (
	testBG = Color{0, 0, 0, 1}
	testFG = Color{1, 1, 1, 1}
)

// pixelOn reports whether the pixel at device (x, y) differs from black.
func pixelOn(t *testing.T, s *ImageSurface, x, y int) bool {
	t.Helper()
	r, g, b, _ := s.Image().At(x, y).RGBA()
	return r|g|b != 0
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(50, 40)
	s.Clear(Color{1, 0, 0, 1})
	got := s.Image().At(25, 20)
	want := color.RGBA{255, 0, 0, 255}
	if got != want {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}

func TestImageSurfaceFilledRect(t *testing.T) {
	s := NewImageSurface(200, 200)
	s.Clear(testBG)
	s.Rect(20, 20, 60, 60, Style{Color: testFG, Alpha: 1, Fill: true})

	// Canvas (50,50) is device (100,100), deep inside the rect.
	if !pixelOn(t, s, 100, 100) {
		t.Error("rect interior not filled")
	}
	// Canvas (10,10) is outside the rect.
	if pixelOn(t, s, 20, 20) {
		t.Error("pixel outside rect was painted")
	}
}

func TestImageSurfaceLetterboxCentersCanvas(t *testing.T) {
	s := NewImageSurface(200, 100)
	s.Clear(testBG)
	// Fill the entire canvas square.
	s.Rect(0, 0, 100, 100, Style{Color: testFG, Alpha: 1, Fill: true})

	// The 100x100 canvas sits centered: device x 50..150.
	if !pixelOn(t, s, 100, 50) {
		t.Error("canvas center not painted")
	}
	if pixelOn(t, s, 10, 50) {
		t.Error("letterbox region was painted")
	}
	if pixelOn(t, s, 190, 50) {
		t.Error("letterbox region was painted")
	}
}

func TestImageSurfaceLineYUp(t *testing.T) {
	s := NewImageSurface(200, 200)
	s.Clear(testBG)
	// A thick line near the canvas top must land near device y=0.
	s.Line(10, 90, 90, 90, Style{Color: testFG, Alpha: 1, Width: 12})

	if !pixelOn(t, s, 100, 20) {
		t.Error("line near canvas top missing at device top")
	}
	if pixelOn(t, s, 100, 180) {
		t.Error("line painted at device bottom; y axis not flipped")
	}
}

func TestImageSurfaceCircleFill(t *testing.T) {
	s := NewImageSurface(200, 200)
	s.Clear(testBG)
	s.Circle(50, 50, 20, Style{Color: testFG, Alpha: 1, Fill: true})

	if !pixelOn(t, s, 100, 100) {
		t.Error("circle center not filled")
	}
	// Canvas (85, 50) is outside the radius-20 circle.
	if pixelOn(t, s, 170, 100) {
		t.Error("pixel outside circle was painted")
	}
}

func TestImageSurfaceCircleStrokeLeavesHole(t *testing.T) {
	s := NewImageSurface(200, 200)
	s.Clear(testBG)
	s.Circle(50, 50, 20, Style{Color: testFG, Alpha: 1, Width: 10})

	if pixelOn(t, s, 100, 100) {
		t.Error("stroked circle filled its center")
	}
	// A point on the ring: canvas (70, 50) → device (140, 100).
	if !pixelOn(t, s, 140, 100) {
		t.Error("ring not painted")
	}
}

func TestImageSurfacePolygonFill(t *testing.T) {
	s := NewImageSurface(200, 200)
	s.Clear(testBG)
	s.Polygon([]Vec2{{50, 20}, {80, 80}, {20, 80}}, Style{Color: testFG, Alpha: 1, Fill: true})

	// Triangle centroid at canvas (50, 60) → device (100, 80).
	if !pixelOn(t, s, 100, 80) {
		t.Error("polygon interior not filled")
	}
	if pixelOn(t, s, 20, 20) {
		t.Error("pixel outside polygon was painted")
	}
}

func TestImageSurfacePolygonTooFewPoints(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.Clear(testBG)
	s.Polygon([]Vec2{{10, 10}, {90, 90}}, Style{Color: testFG, Alpha: 1, Fill: true})
	s.Polyline([]Vec2{{10, 10}}, Style{Color: testFG, Alpha: 1, Width: 10})

	for y := 0; y < 100; y += 7 {
		for x := 0; x < 100; x += 7 {
			if pixelOn(t, s, x, y) {
				t.Fatalf("degenerate shape painted pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestImageSurfaceZeroAlphaDrawsNothing(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.Clear(testBG)
	s.Rect(0, 0, 100, 100, Style{Color: testFG, Alpha: 0, Fill: true})
	s.Circle(50, 50, 40, Style{Color: testFG, Alpha: 0, Fill: true})
	if pixelOn(t, s, 50, 50) {
		t.Error("zero-alpha draw painted pixels")
	}
}

func TestImageSurfaceDashedLine(t *testing.T) {
	s := NewImageSurface(200, 200)
	s.Clear(testBG)
	// Dash pattern 5 on, 5 off starting at canvas x=10.
	s.Line(10, 50, 90, 50, Style{Color: testFG, Alpha: 1, Width: 10, Dash: []float64{5, 5}})

	// Middle of the first on-run: canvas (12.5, 50) → device (25, 100).
	if !pixelOn(t, s, 25, 100) {
		t.Error("dash on-run not painted")
	}
	// Middle of the first off-run: canvas (17.5, 50) → device (35, 100).
	if pixelOn(t, s, 35, 100) {
		t.Error("dash off-run painted")
	}
}

func TestImageSurfaceText(t *testing.T) {
	s := NewImageSurface(200, 200)
	s.Clear(testBG)
	s.Text(50, 50, "HELLO", TextStyle{
		Color: testFG, Alpha: 1, Size: 30,
		Align: AlignCenter, VAlign: VAlignMiddle,
	})

	// Some pixel near the center must be lit.
	found := false
	for y := 80; y < 120 && !found; y++ {
		for x := 60; x < 140 && !found; x++ {
			if pixelOn(t, s, x, y) {
				found = true
			}
		}
	}
	if !found {
		t.Error("no text pixels near anchor")
	}
}

func TestImageSurfaceFaceCache(t *testing.T) {
	s := NewImageSurface(100, 100)
	st := TextStyle{Size: 12, Bold: true}
	f1 := s.face(st)
	f2 := s.face(st)
	if f1 == nil {
		t.Fatal("face() returned nil for bundled font")
	}
	if f1 != f2 {
		t.Error("identical styles produced distinct faces; cache miss")
	}
	if mono := s.face(TextStyle{Size: 12, Mono: true}); mono == f1 {
		t.Error("mono style reused the bold face")
	}
}

func TestWalkDashesRuns(t *testing.T) {
	var runs [][2]Vec2
	pts := []Vec2{{0, 0}, {10, 0}}
	walkDashes(pts, []float64{2, 1}, func(a, b Vec2) {
		runs = append(runs, [2]Vec2{a, b})
	})
	if len(runs) != 4 {
		t.Fatalf("got %d on-runs, want 4", len(runs))
	}
	assertNear(t, "run0 start", runs[0][0].X, 0)
	assertNear(t, "run0 end", runs[0][1].X, 2)
	assertNear(t, "run1 start", runs[1][0].X, 3)
	assertNear(t, "run1 end", runs[1][1].X, 5)
	assertNear(t, "run3 end", runs[3][1].X, 10)
}

func TestWalkDashesBadPatternFallsBackSolid(t *testing.T) {
	var runs int
	pts := []Vec2{{0, 0}, {5, 0}, {5, 5}}
	walkDashes(pts, []float64{3, -1}, func(a, b Vec2) { runs++ })
	if runs != 2 {
		t.Errorf("broken pattern drew %d runs, want the 2 solid segments", runs)
	}
}

func TestFixedRoundtrip(t *testing.T) {
	for _, v := range []float64{0, 1, 12.5, 99.984375} {
		assertNearEps(t, "fixed roundtrip", fixedToFloat(floatToFixed(v)), v, 1.0/64)
	}
}

func BenchmarkImageSurfaceFrame(b *testing.B) {
	s := NewImageSurface(640, 360)
	r := NewRenderer(DefaultTheme())
	step := benchmarkStep()
	b.ReportAllocs()
	for b.Loop() {
		if err := r.Render(s, step, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}
