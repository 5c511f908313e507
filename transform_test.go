package cadence

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- View ---

func TestViewSquareDevice(t *testing.T) {
	v := NewView(200, 200)
	// Canvas fills the device exactly: scale 2, no letterbox.
	px, py := v.ToDevice(0, 0)
	assertNear(t, "origin.px", px, 0)
	assertNear(t, "origin.py", py, 200)
	px, py = v.ToDevice(100, 100)
	assertNear(t, "far.px", px, 200)
	assertNear(t, "far.py", py, 0)
}

func TestViewYAxisFlips(t *testing.T) {
	v := NewView(100, 100)
	_, top := v.ToDevice(50, 100)
	_, bottom := v.ToDevice(50, 0)
	if top >= bottom {
		t.Errorf("canvas top maps to device y=%v, bottom to y=%v; want top above bottom", top, bottom)
	}
}

func TestViewLetterboxWide(t *testing.T) {
	// 16:9 device: the square is centered horizontally.
	v := NewView(1600, 900)
	px, py := v.ToDevice(50, 50)
	assertNear(t, "center.px", px, 800)
	assertNear(t, "center.py", py, 450)
	px, _ = v.ToDevice(0, 50)
	assertNear(t, "left edge.px", px, (1600-900)/2.0)
}

func TestViewLetterboxTall(t *testing.T) {
	v := NewView(900, 1600)
	px, py := v.ToDevice(50, 50)
	assertNear(t, "center.px", px, 450)
	assertNear(t, "center.py", py, 800)
	_, py = v.ToDevice(50, 0)
	assertNear(t, "bottom edge.py", py, 1600-(1600-900)/2.0)
}

func TestViewRoundtrip(t *testing.T) {
	v := NewView(1280, 720)
	for _, p := range [][2]float64{{0, 0}, {100, 100}, {50, 50}, {12.5, 87.5}} {
		px, py := v.ToDevice(p[0], p[1])
		x, y := v.ToCanvas(px, py)
		assertNear(t, "roundtrip.x", x, p[0])
		assertNear(t, "roundtrip.y", y, p[1])
	}
}

func TestViewAspectLocked(t *testing.T) {
	// One canvas unit must span the same pixel count on both axes.
	v := NewView(1920, 1080)
	x0, _ := v.ToDevice(0, 0)
	x1, _ := v.ToDevice(1, 0)
	_, y0 := v.ToDevice(0, 0)
	_, y1 := v.ToDevice(0, 1)
	assertNear(t, "unit aspect", math.Abs(x1-x0), math.Abs(y1-y0))
	assertNear(t, "Pixels(1)", v.Pixels(1), math.Abs(x1-x0))
}

func TestViewClampsDegenerateSize(t *testing.T) {
	v := NewView(0, -5)
	w, h := v.Size()
	if w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, want 1x1", w, h)
	}
}

func TestViewStrokeFloor(t *testing.T) {
	// Tiny device: widths still come out at a pixel minimum.
	v := NewView(10, 10)
	if got := v.StrokePx(1); got < 1 {
		t.Errorf("StrokePx(1) = %v, want >= 1", got)
	}
}

func TestViewFontScalesWithDevice(t *testing.T) {
	small := NewView(100, 100)
	big := NewView(1000, 1000)
	assertNear(t, "font 10x device", big.FontPx(18), 10*small.FontPx(18))
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	got := multiplyAffine(a, b)
	assertMatrix(t, "translations", got, [6]float64{1, 0, 0, 1, 15, 23})
}

func TestMultiplyAffineMatchesSequentialPoints(t *testing.T) {
	a := [6]float64{2, 0.1, 0.3, 3, 100, 200}
	b := [6]float64{1.5, 0.2, 0.1, 2.5, 50, 30}
	ab := multiplyAffine(a, b)

	x, y := 7.0, -3.0
	bx, by := transformPoint(b, x, y)
	wantX, wantY := transformPoint(a, bx, by)
	gotX, gotY := transformPoint(ab, x, y)
	assertNear(t, "composed.x", gotX, wantX)
	assertNear(t, "composed.y", gotY, wantY)
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "m*inv=id", result, identityTransform)
}

func TestInvertAffineViewMatrix(t *testing.T) {
	// A view matrix has a negative d; inversion must handle it.
	m := NewView(1600, 900).Matrix()
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "view*inv=id", result, identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	m := [6]float64{0, 0, 0, 1, 10, 20}
	inv := invertAffine(m)
	assertMatrix(t, "singular→identity", inv, identityTransform)
}

func TestInvertAffineFullyDegenerate(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 50, 100}
	inv := invertAffine(m)
	assertMatrix(t, "zero→identity", inv, identityTransform)
}

// --- Benchmarks ---

func BenchmarkViewToDevice(b *testing.B) {
	v := NewView(1920, 1080)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = v.ToDevice(37.5, 62.5)
	}
}

func BenchmarkMultiplyAffine(b *testing.B) {
	a := [6]float64{2, 0.1, 0.3, 3, 100, 200}
	c := [6]float64{1.5, 0.2, 0.1, 2.5, 50, 30}
	b.ReportAllocs()
	for b.Loop() {
		_ = multiplyAffine(a, c)
	}
}
