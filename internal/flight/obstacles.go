package flight

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/shoutbird/internal/config"
)

// Obstacle is a pipe pair in world coordinates. X is measured from the start
// of the course, so the on-screen position is X minus the distance flown.
type Obstacle struct {
	X         float64
	GapTop    float64
	GapHeight float64
}

// VisibleX returns the obstacle's left edge relative to the viewport.
func (o Obstacle) VisibleX(distance float64) float64 {
	return o.X - distance
}

// minPeriod keeps the spawn period usable for degenerate viewports.
const minPeriod = 1.0

// ObstacleGenerator spawns one obstacle per spawn period crossed and retires
// obstacles once they have scrolled fully past the left edge. Obstacles are
// kept in ascending X order.
type ObstacleGenerator struct {
	period    float64
	viewW     float64
	pipeWidth float64
	gapHeight float64
	gapMin    float64
	gapSpan   float64
	rng       *rand.Rand
	obstacles []Obstacle
}

// NewObstacleGenerator creates a generator for a viewport. The spawn period is
// derived from the viewport height and the gap height from the bird height.
func NewObstacleGenerator(cfg config.Obstacles, birdHeight float64, vp Viewport, seed int64) *ObstacleGenerator {
	gap := cfg.GapBirdHeights * birdHeight
	span := vp.Height - cfg.GroundHeight - cfg.CapTopHeight - cfg.CapBottomHeight - gap
	if span < 0 {
		span = 0
	}
	period := vp.Height / cfg.PeriodDivisor
	if !(period >= minPeriod) {
		period = minPeriod
	}
	return &ObstacleGenerator{
		period:    period,
		viewW:     vp.Width,
		pipeWidth: cfg.PipeWidth,
		gapHeight: gap,
		gapMin:    cfg.CapTopHeight,
		gapSpan:   span,
		rng:       rand.New(rand.NewSource(seed)),
		obstacles: make([]Obstacle, 0, 8),
	}
}

// Period returns the horizontal spawn period.
func (g *ObstacleGenerator) Period() float64 {
	return g.period
}

// GapHeight returns the gap height shared by every obstacle of the session.
func (g *ObstacleGenerator) GapHeight() float64 {
	return g.gapHeight
}

// GapRange returns the lowest and highest possible GapTop.
func (g *ObstacleGenerator) GapRange() (lo, hi float64) {
	return g.gapMin, g.gapMin + g.gapSpan
}

// Spawn adds one obstacle for every period index entered while the distance
// moved from prev to now, and returns how many were added.
func (g *ObstacleGenerator) Spawn(prev, now float64) int {
	start := periodIndex(prev, g.period)
	end := periodIndex(now, g.period)
	for i := start + 1; i <= end; i++ {
		g.obstacles = append(g.obstacles, Obstacle{
			X:         float64(i)*g.period + g.viewW,
			GapTop:    math.Floor(g.rng.Float64()*g.gapSpan) + g.gapMin,
			GapHeight: g.gapHeight,
		})
	}
	if end > start {
		return end - start
	}
	return 0
}

// Retire drops obstacles whose right edge is at or left of the viewport's
// left edge and returns how many were dropped.
func (g *ObstacleGenerator) Retire(distance float64) int {
	n := 0
	for n < len(g.obstacles) && g.obstacles[n].VisibleX(distance) <= -g.pipeWidth {
		n++
	}
	if n > 0 {
		g.obstacles = append(g.obstacles[:0], g.obstacles[n:]...)
	}
	return n
}

// Obstacles returns the live obstacles, oldest first.
func (g *ObstacleGenerator) Obstacles() []Obstacle {
	return g.obstacles
}

func periodIndex(distance, period float64) int {
	return int(math.Floor(distance / period))
}
