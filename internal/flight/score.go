package flight

// ScoreTracker counts obstacles passed by the bird.
//
// The bird is considered to pass a period boundary when its offset from the
// spawn origin (distance - viewport width + bird x) crosses one. Points are
// only awarded once the previous frame's index is already positive, which
// delays the first point relative to spawning.
type ScoreTracker struct {
	period float64
	offset float64
	score  int
}

// NewScoreTracker creates a tracker for a bird at birdX in a viewport of the
// given width.
func NewScoreTracker(period, viewportWidth, birdX float64) *ScoreTracker {
	return &ScoreTracker{period: period, offset: birdX - viewportWidth}
}

// Advance scores the move from prev to now and returns the points added.
func (s *ScoreTracker) Advance(prev, now float64) int {
	start := periodIndex(prev+s.offset, s.period)
	end := periodIndex(now+s.offset, s.period)
	if start <= 0 || end <= start {
		return 0
	}
	s.score += end - start
	return end - start
}

// Score returns the total.
func (s *ScoreTracker) Score() int {
	return s.score
}
