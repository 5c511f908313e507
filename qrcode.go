package cadence

import (
	"sync"

	qrcode "github.com/skip2/go-qrcode"
)

// qrCache holds generated module bitmaps keyed by content. Decks repeat the
// same handful of codes across frames, so generation happens once.
var (
	qrMu    sync.Mutex
	qrCodes map[string][][]bool
)

// qrBitmap returns the module bitmap for content, including the quiet zone.
func qrBitmap(content string) ([][]bool, error) {
	qrMu.Lock()
	defer qrMu.Unlock()
	if bm, ok := qrCodes[content]; ok {
		return bm, nil
	}
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	bm := q.Bitmap()
	if qrCodes == nil {
		qrCodes = make(map[string][][]bool)
	}
	qrCodes[content] = bm
	return bm, nil
}

func drawQRCode(r *Renderer, s Surface, e *Element, ctx RenderContext) {
	size := e.Width
	if e.Height < size {
		size = e.Height
	}
	size *= ctx.Scale

	bm, err := qrBitmap(e.Text)
	if err != nil {
		warnOncef("qr:"+e.Text, "qr code %q: %v", e.Text, err)
		drawGeneric(r, s, e, ctx)
		return
	}
	n := len(bm)
	if n == 0 {
		return
	}

	// White backing; the bitmap's quiet zone keeps the code scannable.
	s.Rect(ctx.X-size/2, ctx.Y-size/2, size, size, Style{
		Color: ColorWhite,
		Alpha: ctx.Alpha,
		Fill:  true,
	})

	cell := size / float64(n)
	dark := r.theme.Color("bg")
	for row := 0; row < n; row++ {
		y := ctx.Y + size/2 - float64(row+1)*cell
		for col := 0; col < n; col++ {
			if !bm[row][col] {
				continue
			}
			s.Rect(ctx.X-size/2+float64(col)*cell, y, cell, cell, Style{
				Color: dark,
				Alpha: ctx.Alpha,
				Fill:  true,
			})
		}
	}

	if e.Label != "" {
		s.Text(ctx.X, ctx.Y-size/2-3, e.Label, TextStyle{
			Color: r.theme.Color("text"),
			Alpha: ctx.Alpha,
			Size:  9 * ctx.Scale,
			Align: AlignCenter,
		})
	}
}
