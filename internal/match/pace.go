package match

import (
	"time"

	"github.com/vovakirdan/tui-matchday/internal/config"
	"github.com/vovakirdan/tui-matchday/internal/core"
)

// pausedInterval is how often a paused loop polls for input.
const pausedInterval = 100 * time.Millisecond

// Pace converts the user-facing speed setting into wall-clock intervals.
// Higher speed means shorter waits between simulated minutes.
type Pace struct {
	speed int
	cfg   config.PaceConfig
}

// NewPace starts at the configured default speed.
func NewPace(cfg config.PaceConfig) *Pace {
	p := &Pace{cfg: cfg}
	p.Set(cfg.DefaultSpeed)
	return p
}

// Speed returns the current speed.
func (p *Pace) Speed() int { return p.speed }

// Set clamps and applies a speed.
func (p *Pace) Set(speed int) {
	lo := max(1, p.cfg.MinSpeed)
	hi := max(lo, p.cfg.MaxSpeed)
	p.speed = core.Clamp(speed, lo, hi)
}

// Adjust changes the speed by delta, clamped to the configured range.
func (p *Pace) Adjust(delta int) {
	p.Set(p.speed + delta)
}

// Step returns the configured adjustment step.
func (p *Pace) Step() int {
	return max(1, p.cfg.SpeedStep)
}

// Interval is the wall-clock time one simulated minute takes.
func (p *Pace) Interval() time.Duration {
	return p.cfg.BaseInterval / time.Duration(p.speed)
}

// FrameInterval is the time one frame of a pass animation of n frames takes.
func (p *Pace) FrameInterval(n int) time.Duration {
	return p.cfg.AnimationBase / time.Duration(p.speed) / time.Duration(max(1, n))
}
