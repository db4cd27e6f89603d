package flight

import "github.com/vovakirdan/shoutbird/internal/core"

// CollisionEngine tests the bird against the ground and the obstacles.
type CollisionEngine struct {
	groundY   float64
	pipeWidth float64
}

// NewCollisionEngine creates an engine whose ground starts groundHeight above
// the bottom of the viewport.
func NewCollisionEngine(vp Viewport, groundHeight, pipeWidth float64) CollisionEngine {
	return CollisionEngine{groundY: vp.Height - groundHeight, pipeWidth: pipeWidth}
}

// GroundY returns the world y of the top of the ground.
func (c CollisionEngine) GroundY() float64 {
	return c.groundY
}

// Ground reports whether the bird has reached the ground, resting it on the
// ground if so.
func (c CollisionEngine) Ground(b *Bird) bool {
	if b.Y+b.Height < c.groundY {
		return false
	}
	b.Y = c.groundY - b.Height
	return true
}

// Obstacle reports whether the bird hits any obstacle at the given distance.
func (c CollisionEngine) Obstacle(b Bird, obstacles []Obstacle, distance float64) bool {
	for _, o := range obstacles {
		if Collides(b.Rect(), o, o.VisibleX(distance), c.pipeWidth) {
			return true
		}
	}
	return false
}

// Collides reports whether a bird hitbox overlapping an obstacle horizontally
// sticks out of the obstacle's gap.
func Collides(bird core.RectF, o Obstacle, visibleX, pipeWidth float64) bool {
	pipe := core.RectF{X: visibleX, W: pipeWidth}
	if !bird.OverlapsX(pipe) {
		return false
	}
	return !bird.WithinY(o.GapTop, o.GapTop+o.GapHeight)
}
