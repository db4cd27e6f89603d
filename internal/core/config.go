package core

// RuntimeConfig contains configuration passed to a session at start.
// The session uses it to size the virtual viewport and seed gap placement.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gap placement
	CellW    int   // World units per terminal column
	CellH    int   // World units per terminal row
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    8,
		CellH:    16,
	}
}

// WorldSize returns the virtual viewport in world units.
func (c RuntimeConfig) WorldSize() (w, h float64) {
	return float64(c.ScreenW * c.CellW), float64(c.ScreenH * c.CellH)
}

// ToCellX converts a world x coordinate to a terminal column.
func (c RuntimeConfig) ToCellX(x float64) int {
	return FloorDiv(x, c.CellW)
}

// ToCellY converts a world y coordinate to a terminal row.
func (c RuntimeConfig) ToCellY(y float64) int {
	return FloorDiv(y, c.CellH)
}
