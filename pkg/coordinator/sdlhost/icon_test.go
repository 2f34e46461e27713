package sdlhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeChevron(t *testing.T) {
	img, err := rasterizeSVG(chevronSVG, 32)
	require.NoError(t, err)

	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	opaque := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			opaque++
		}
	}
	assert.Positive(t, opaque)
	assert.Zero(t, img.RGBAAt(31, 16).A, "right edge stays transparent")
}

func TestRasterizeRejectsBadInput(t *testing.T) {
	_, err := rasterizeSVG(chevronSVG, 0)
	assert.Error(t, err)
}
