package flight

// Thresholds is the trigger state of a FlapDetector.
type Thresholds struct {
	Static  float64 // fixed once calibration resolves
	Dynamic float64 // adjusted every gameplay frame
}

// FlapDetector turns amplitude samples into flap events with a rising-edge
// peak detector. After a flap the dynamic threshold is pinned to 1 and stays
// there until the signal drops to the static threshold, so a sustained shout
// flaps once.
type FlapDetector struct {
	static   float64
	dynamic  float64
	previous float64
	locked   bool
}

// NewFlapDetector creates a detector armed at the static threshold.
func NewFlapDetector(static float64) *FlapDetector {
	if static < 0 {
		static = 0
	}
	return &FlapDetector{static: static, dynamic: static}
}

// Detect consumes one sample and reports whether it triggers a flap.
func (d *FlapDetector) Detect(amplitude float64) bool {
	if amplitude > d.dynamic {
		flap := false
		if d.previous > amplitude {
			// Falling but still loud: follow it down so the next rise can fire.
			d.dynamic = amplitude
		} else if d.previous < amplitude && d.dynamic < amplitude {
			flap = true
			d.dynamic = 1
			d.locked = true
		}
		d.previous = amplitude
		return flap
	}

	if d.locked && amplitude > d.static {
		d.previous = amplitude
		return false
	}

	d.dynamic = d.static
	d.previous = 0
	d.locked = false
	return false
}

// Thresholds returns the current static and dynamic thresholds.
func (d *FlapDetector) Thresholds() Thresholds {
	return Thresholds{Static: d.static, Dynamic: d.dynamic}
}
