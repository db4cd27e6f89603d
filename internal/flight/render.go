package flight

import (
	"math"

	"github.com/vovakirdan/shoutbird/internal/core"
)

// Bird poses share one atlas: four wing frames per pose, two rows per pose.
var birdAtlas = []string{
	"▀██▶▄██▶─██▶▄██▶",
	" ▀▀  ▀▀  ▀▀  ▀▀ ",
	"▀▄█▲▄▄█▲─▄█▲▄▄█▲",
	"▀▀▀ ▀▀▀ ▀▀▀ ▀▀▀ ",
	"▀▄▄ ▄▄▄ ─▄▄ ▄▄▄ ",
	" ▀█▼ ▀█▼ ▀█▼ ▀█▼",
}

var birdPalette = map[rune]core.Color{
	'█': core.ColorBird,
	'▀': core.ColorBird,
	'▄': core.ColorBird,
	'─': core.ColorBird,
	'▶': core.ColorBeak,
	'▲': core.ColorBeak,
	'▼': core.ColorBeak,
}

func birdPose(v int) *core.SpriteSheet {
	frames := core.StripFrames(wingFrames, 4)
	for i := range frames {
		frames[i].V = v
	}
	return &core.SpriteSheet{FrameWidth: 4, FrameHeight: 2, Frames: frames, Atlas: birdAtlas, Palette: birdPalette}
}

var (
	birdLevel = birdPose(0)
	birdClimb = birdPose(2)
	birdDive  = birdPose(4)
)

// Rotation limits, in degrees, for switching bird poses.
const (
	climbRotation = -15
	diveRotation  = 45
)

const (
	groundPattern = "▚▞"
	skyline       = "  ▂▄▂ ▆▆ ▃▅▃  ▂▇▂▂ ▄▄▆ ▃  "
	cloudline     = "      ▁▂▂▁           ▁▂▁            "
)

// Render draws the session back to front: ground, sky, obstacles, bird and
// the overlays. rc supplies the cell scale used to map world units to cells.
func Render(dst *core.Screen, s *Session, rc core.RuntimeConfig) {
	dst.Clear()
	groundRow := rc.ToCellY(s.GroundY())

	drawGround(dst, groundRow, rc.ToCellX(s.Scroll()))
	drawSky(dst, groundRow)
	if !s.Phase().Calibrating() {
		for _, o := range s.Obstacles() {
			drawObstacle(dst, o, s.State().Distance, s.PipeWidth(), groundRow, rc)
		}
	}
	drawBird(dst, s, rc)

	if s.SplashVisible() {
		drawSplash(dst, rc.ToCellY(s.Bird().Y-100))
	}
	if s.Phase() == PhaseFinished {
		drawFinalScore(dst, s.State().Score)
	} else {
		value := s.State().Score
		core.DrawNumber(dst, (dst.Width()-core.NumberWidth(value, true))/2, 1, value, true, core.ColorScore)
	}
	drawMeter(dst, s.Meter())
}

func drawGround(dst *core.Screen, row, scroll int) {
	pattern := []rune(groundPattern)
	dst.DrawHLine(0, row, dst.Width(), '▀', core.ColorGrass)
	for y := row + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			i := (x + scroll + y) % len(pattern)
			dst.SetColored(x, y, pattern[i], core.ColorGround)
		}
	}
}

func drawSky(dst *core.Screen, groundRow int) {
	drawStrip(dst, groundRow-1, skyline, core.ColorCity)
	drawStrip(dst, groundRow-4, cloudline, core.ColorCloud)
}

func drawStrip(dst *core.Screen, y int, strip string, c core.Color) {
	runes := []rune(strip)
	for x := 0; x < dst.Width(); x++ {
		if r := runes[x%len(runes)]; r != ' ' {
			dst.SetColored(x, y, r, c)
		}
	}
}

// drawObstacle draws the hanging pipe, its cap, the standing pipe's cap and
// the standing pipe. Caps are one column wider on each side.
func drawObstacle(dst *core.Screen, o Obstacle, distance, pipeWidth float64, groundRow int, rc core.RuntimeConfig) {
	vx := o.VisibleX(distance)
	left := rc.ToCellX(vx)
	width := max(rc.ToCellX(vx+pipeWidth)-left, 1)

	gapTop := rc.ToCellY(o.GapTop)
	gapBottom := rc.ToCellY(o.GapTop + o.GapHeight)

	if gapTop > 0 {
		dst.FillRect(core.NewRect(left, 0, width, gapTop-1), '█', core.ColorPipe)
		dst.FillRect(core.NewRect(left-1, gapTop-1, width+2, 1), '▄', core.ColorPipeCap)
	}
	if gapBottom < groundRow {
		dst.FillRect(core.NewRect(left-1, gapBottom, width+2, 1), '▀', core.ColorPipeCap)
		dst.FillRect(core.NewRect(left, gapBottom+1, width, groundRow-gapBottom-1), '█', core.ColorPipe)
	}
}

func drawBird(dst *core.Screen, s *Session, rc core.RuntimeConfig) {
	b := s.Bird()
	sheet := birdLevel
	switch {
	case b.Rotation >= diveRotation:
		sheet = birdDive
	case b.Rotation <= climbRotation:
		sheet = birdClimb
	}
	sheet.Blit(dst, s.WingFrame(), rc.ToCellX(b.X), rc.ToCellY(b.Y))
}

func drawSplash(dst *core.Screen, y int) {
	const text = "SHOUT!"
	w := len(text) + 4
	x := (dst.Width() - w) / 2
	y = core.Clamp(y, 0, max(dst.Height()-3, 0))
	dst.FillRect(core.NewRect(x, y, w, 3), ' ', core.ColorSplash)
	dst.DrawBox(core.NewRect(x, y, w, 3), core.ColorSplash)
	dst.DrawTextCentered(y+1, text, core.ColorSplash)
}

// drawFinalScore shows the result in a box using the small glyphs.
func drawFinalScore(dst *core.Screen, score int) {
	const title = "GAME OVER"
	boxW := len(title) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorScore)
	dst.DrawTextCentered(boxY+1, title, core.ColorScore)
	core.DrawNumber(dst, (dst.Width()-core.NumberWidth(score, false))/2, boxY+3, score, false, core.ColorScore)
}

// drawMeter draws the translucent voice bar along the bottom row.
func drawMeter(dst *core.Screen, level float64) {
	if level <= 0 {
		return
	}
	n := int(math.Round(core.ClampF(level, 0, 1) * float64(dst.Width())))
	dst.DrawHLine(0, dst.Height()-1, n, '▁', core.ColorMeter)
}
