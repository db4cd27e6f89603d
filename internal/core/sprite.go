package core

// Frame is the top-left corner of one frame inside a sprite atlas.
type Frame struct {
	U, V int
}

// SpriteSheet is a plain data table describing frames cut from a rune atlas.
// A space in the atlas is transparent.
type SpriteSheet struct {
	FrameWidth  int
	FrameHeight int
	Frames      []Frame
	Atlas       []string
	Palette     map[rune]Color
}

// Len returns the number of frames in the sheet.
func (s *SpriteSheet) Len() int {
	return len(s.Frames)
}

// Blit copies one frame of the sheet onto dst with its top-left at (x, y).
// Frame indexes wrap around; cells outside the screen are clipped.
func (s *SpriteSheet) Blit(dst *Screen, frame, x, y int) {
	s.blit(dst, frame, x, y, func(r rune) Color { return s.Palette[r] })
}

// BlitColored is Blit with every opaque cell drawn in a single colour.
func (s *SpriteSheet) BlitColored(dst *Screen, frame, x, y int, c Color) {
	s.blit(dst, frame, x, y, func(rune) Color { return c })
}

func (s *SpriteSheet) blit(dst *Screen, frame, x, y int, colorOf func(rune) Color) {
	if len(s.Frames) == 0 {
		return
	}
	frame %= len(s.Frames)
	if frame < 0 {
		frame += len(s.Frames)
	}
	f := s.Frames[frame]

	for dy := 0; dy < s.FrameHeight; dy++ {
		row := f.V + dy
		if row < 0 || row >= len(s.Atlas) {
			continue
		}
		runes := []rune(s.Atlas[row])
		for dx := 0; dx < s.FrameWidth; dx++ {
			col := f.U + dx
			if col < 0 || col >= len(runes) || runes[col] == ' ' {
				continue
			}
			dst.SetColored(x+dx, y+dy, runes[col], colorOf(runes[col]))
		}
	}
}

// StripFrames returns n frames laid out left to right along the top of an atlas.
func StripFrames(n, frameWidth int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{U: i * frameWidth}
	}
	return frames
}
