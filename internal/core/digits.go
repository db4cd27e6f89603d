package core

import "strconv"

// BigDigits is a 3x3 block font for the in-game score.
var BigDigits = &SpriteSheet{
	FrameWidth:  3,
	FrameHeight: 3,
	Frames:      StripFrames(10, 3),
	Atlas: []string{
		"█▀█▀█ ▀▀█▀▀██ ██▀▀█▀▀▀▀██▀██▀█",
		"█ █ █ █▀▀ ▀█▀▀█▀▀██▀█  ██▀█▀▀█",
		"▀▀▀▀▀▀▀▀▀▀▀▀  ▀▀▀▀▀▀▀  ▀▀▀▀▀▀▀",
	},
}

// SmallDigits is a one-cell font for compact score output.
var SmallDigits = &SpriteSheet{
	FrameWidth:  1,
	FrameHeight: 1,
	Frames:      StripFrames(10, 1),
	Atlas:       []string{"0123456789"},
}

// NumberWidth returns how many columns DrawNumber uses for value.
func NumberWidth(value int, big bool) int {
	n := len(strconv.Itoa(value))
	if !big {
		return n
	}
	return n*4 - 1
}

// DrawNumber renders a non-negative integer with either glyph set, left edge at x.
func DrawNumber(dst *Screen, x, y, value int, big bool, c Color) {
	sheet, advance := SmallDigits, 1
	if big {
		sheet, advance = BigDigits, 4
	}
	if value < 0 {
		value = 0
	}
	for i, ch := range strconv.Itoa(value) {
		sheet.BlitColored(dst, int(ch-'0'), x+i*advance, y, c)
	}
}
