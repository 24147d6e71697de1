package match

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-matchday/internal/core"
)

// Scheduler decides how the loop waits between iterations.
type Scheduler interface {
	Wait(ctx context.Context, d time.Duration) error
}

// Realtime waits for the full interval.
type Realtime struct{}

// Wait implements Scheduler.
func (Realtime) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Instant never waits, so headless matches run as fast as the CPU allows.
type Instant struct{}

// Wait implements Scheduler.
func (Instant) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// InputSource yields the actions pending since the last poll. Poll must
// not block.
type InputSource interface {
	Poll() core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Poll implements InputSource.
func (f InputFunc) Poll() core.InputFrame { return f() }

// ChanInput drains a buffered action channel without blocking.
type ChanInput chan core.Action

// Poll implements InputSource.
func (c ChanInput) Poll() core.InputFrame {
	frame := core.NewInputFrame()
	for {
		select {
		case a := <-c:
			frame.Set(a)
		default:
			return frame
		}
	}
}

// Loop drives a session: poll input, maybe step, render the settled
// snapshot, wait.
type Loop struct {
	Session   *Session
	Input     InputSource         // Optional
	Render    func(Snapshot, HUD) // Optional
	Scheduler Scheduler           // Defaults to Realtime
}

// Run loops until the match ends or ctx is cancelled. Cancellation leaves
// the match unfinished and uncommitted.
func (l *Loop) Run(ctx context.Context) error {
	sched := l.Scheduler
	if sched == nil {
		sched = Realtime{}
	}
	s := l.Session
	for !s.Done() {
		if l.Input != nil {
			s.Apply(l.Input.Poll())
		}
		s.Advance()
		if l.Render != nil {
			l.Render(s.Engine.Snapshot(), s.HUD())
		}
		if s.Done() {
			break
		}
		if err := sched.Wait(ctx, s.Interval()); err != nil {
			return err
		}
	}
	return nil
}
