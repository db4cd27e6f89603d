package flight

import (
	"math"

	"github.com/vovakirdan/shoutbird/internal/config"
	"github.com/vovakirdan/shoutbird/internal/core"
)

// Bird is the player's state. X and the hitbox size never change after the
// session starts. Rotation is in degrees, positive is nose down.
type Bird struct {
	X         float64
	Y         float64
	VelocityY float64
	Rotation  float64
	Width     float64
	Height    float64
}

// Rect returns the bird's hitbox in world units.
func (b Bird) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Physics integrates the bird one frame at a time.
type Physics struct {
	cfg config.Physics
}

// NewPhysics creates an integrator with the given constants.
func NewPhysics(cfg config.Physics) Physics {
	return Physics{cfg: cfg}
}

// Flap replaces the bird's velocity with the flap impulse.
func (p Physics) Flap(b *Bird) {
	b.VelocityY = p.cfg.FlapImpulse
}

// Integrate applies gravity to the velocity, then the velocity to the position.
func (p Physics) Integrate(b *Bird) {
	b.VelocityY += p.cfg.Gravity
	b.Y += b.VelocityY
}

// Ease updates the bird's rotation. In flight it follows the velocity; during
// the death fall it turns a fixed step per frame; once grounded it holds.
// Rotation never exceeds the configured maximum.
func (p Physics) Ease(b *Bird, ended, grounded bool) {
	switch {
	case grounded:
		return
	case ended:
		b.Rotation += p.cfg.DeathRotation
	default:
		b.Rotation = (b.VelocityY / p.cfg.RotationScale) * 180 / math.Pi
	}
	b.Rotation = math.Min(b.Rotation, p.cfg.MaxRotation)
}
