package sdlhost

import (
	"testing"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/screen"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestPaddingInset(t *testing.T) {
	r := sdl.Rect{X: 10, Y: 20, W: 100, H: 50}

	assert.Equal(t, sdl.Rect{X: 14, Y: 24, W: 92, H: 42}, UniformPadding(4).Inset(r))

	collapsed := UniformPadding(60).Inset(r)
	assert.Equal(t, int32(0), collapsed.W)
	assert.Equal(t, int32(0), collapsed.H)

	uneven := Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}.Inset(r)
	assert.Equal(t, sdl.Rect{X: 14, Y: 21, W: 94, H: 46}, uneven)
}

func TestSplitBands(t *testing.T) {
	r := sdl.Rect{X: 0, Y: 0, W: 640, H: 480}

	bar, rest := splitTop(r, 64)
	assert.Equal(t, sdl.Rect{W: 640, H: 64}, bar)
	assert.Equal(t, sdl.Rect{Y: 64, W: 640, H: 416}, rest)

	rest, strip := splitBottom(r, 56)
	assert.Equal(t, sdl.Rect{W: 640, H: 424}, rest)
	assert.Equal(t, sdl.Rect{Y: 424, W: 640, H: 56}, strip)

	bar, rest = splitTop(sdl.Rect{W: 10, H: 20}, 100)
	assert.Equal(t, int32(20), bar.H)
	assert.Equal(t, int32(0), rest.H)
}

func TestSheetRect(t *testing.T) {
	bounds := sdl.Rect{W: 800, H: 600}

	assert.Equal(t, sdl.Rect{X: 200, Y: 150, W: 400, H: 300}, sheetRect(screen.StyleFormSheet, bounds))
	assert.Equal(t, sdl.Rect{X: 100, Y: 75, W: 600, H: 450}, sheetRect(screen.StylePageSheet, bounds))

	offset := sheetRect(screen.StyleFormSheet, sdl.Rect{X: 10, Y: 20, W: 100, H: 100})
	assert.Equal(t, sdl.Rect{X: 35, Y: 45, W: 50, H: 50}, offset)
}

func TestTabRects(t *testing.T) {
	rects := tabRects(sdl.Rect{X: 0, Y: 400, W: 100, H: 40}, 3)

	assert.Len(t, rects, 3)
	assert.Equal(t, sdl.Rect{X: 0, Y: 400, W: 33, H: 40}, rects[0])
	assert.Equal(t, sdl.Rect{X: 33, Y: 400, W: 33, H: 40}, rects[1])
	assert.Equal(t, sdl.Rect{X: 66, Y: 400, W: 34, H: 40}, rects[2])

	assert.Nil(t, tabRects(sdl.Rect{W: 100}, 0))
}

func TestCenterIn(t *testing.T) {
	assert.Equal(t, sdl.Rect{X: 16, Y: 16, W: 32, H: 32}, centerIn(sdl.Rect{W: 64, H: 64}, 32, 32))
}
