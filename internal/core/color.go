package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Scene palette, roughly back-to-front.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorCity
	ColorGround
	ColorGrass
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorBeak
	ColorScore
	ColorSplash
	ColorMeter
	ColorDim
)

// String returns a short name for the colour, used in debug output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorCloud:
		return "cloud"
	case ColorCity:
		return "city"
	case ColorGround:
		return "ground"
	case ColorGrass:
		return "grass"
	case ColorPipe:
		return "pipe"
	case ColorPipeCap:
		return "pipe-cap"
	case ColorBird:
		return "bird"
	case ColorBeak:
		return "beak"
	case ColorScore:
		return "score"
	case ColorSplash:
		return "splash"
	case ColorMeter:
		return "meter"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
