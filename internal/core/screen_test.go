package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != BlankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCellClips(t *testing.T) {
	s := NewScreen(10, 10)

	x := Cell{Rune: 'X', Fg: ColorGray}
	s.SetCell(5, 5, x)
	assert.Equal(t, x, s.GetCell(5, 5))

	// Out of bounds should be silent
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetCell(p[0], p[1], x)
		assert.Equal(t, BlankCell, s.GetCell(p[0], p[1]))
	}
}

func TestScreenDrawTextKeepsColours(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetCell(1, 0, Cell{Rune: ' ', Fg: ColorWhite, Bg: ColorNavy})
	s.DrawText(1, 0, "S")

	assert.Equal(t, Cell{Rune: 'S', Fg: ColorWhite, Bg: ColorNavy}, s.GetCell(1, 0))
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	navy := Cell{Rune: ' ', Bg: ColorNavy}
	s.Fill(navy)

	assert.Equal(t, navy, s.GetCell(4, 4))

	s.Clear()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, BlankCell, s.GetCell(x, y))
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	assert.Equal(t, "  Hello", strings.Split(s.String(), "\n")[1][:7])

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.GetCell(18, 0).Rune)
	assert.Equal(t, 'e', s.GetCell(19, 0).Rune)
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	assert.Equal(t, 'H', s.GetCell(9, 2).Rune)
	assert.Equal(t, 'i', s.GetCell(10, 2).Rune)
}

func TestScreenOverlay(t *testing.T) {
	base := NewScreen(4, 2)
	base.Fill(Cell{Rune: ' ', Bg: ColorNavy})
	base.DrawText(0, 0, "ab")

	top := NewScreen(4, 2)
	top.SetCell(1, 0, Cell{Rune: '@', Fg: ColorWhite, Bg: ColorNavy})

	base.Overlay(top)

	assert.Equal(t, 'a', base.GetCell(0, 0).Rune, "blank top cells leave the base untouched")
	assert.Equal(t, '@', base.GetCell(1, 0).Rune)
	assert.Equal(t, ColorWhite, base.GetCell(1, 0).Fg)
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}
