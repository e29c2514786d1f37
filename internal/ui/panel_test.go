package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSheet(t *testing.T) {
	sheet := DefaultSheet()

	bg, ok := sheet.Color(".panel", "background-color")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x1e, 0x1e, 0x23, 255}, bg)

	size, ok := sheet.Pixels(".panel", "font-size")
	require.True(t, ok)
	assert.Equal(t, 14, size)
}
