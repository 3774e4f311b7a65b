// Package pomodoro implements the focus-timer state machine that links a
// countdown to a schedule block. The machine is pure state plus an injected
// clock; rendering and notification wiring live with the caller.
package pomodoro

import (
	"errors"
	"time"
)

// Phase identifies the timer's current mode.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

var (
	// ErrAlreadyRunning is returned when starting a timer that is not idle.
	ErrAlreadyRunning = errors.New("pomodoro: timer already running")
	// ErrNotRunning is returned for operations that need an active timer.
	ErrNotRunning = errors.New("pomodoro: timer not running")
	// ErrNotPaused is returned when resuming a timer that is not paused.
	ErrNotPaused = errors.New("pomodoro: timer not paused")
)

// Config sets the phase lengths and the long-break cadence.
type Config struct {
	FocusMinutes       int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	CyclesPerLongBreak int
}

func (c Config) normalized() Config {
	if c.FocusMinutes <= 0 {
		c.FocusMinutes = 25
	}
	if c.ShortBreakMinutes <= 0 {
		c.ShortBreakMinutes = 5
	}
	if c.LongBreakMinutes <= 0 {
		c.LongBreakMinutes = 15
	}
	if c.CyclesPerLongBreak <= 0 {
		c.CyclesPerLongBreak = 4
	}
	return c
}

func (c Config) phaseLength(p Phase) time.Duration {
	switch p {
	case PhaseFocus:
		return time.Duration(c.FocusMinutes) * time.Minute
	case PhaseShortBreak:
		return time.Duration(c.ShortBreakMinutes) * time.Minute
	case PhaseLongBreak:
		return time.Duration(c.LongBreakMinutes) * time.Minute
	default:
		return 0
	}
}

// Timer tracks one focus session tied to a schedule block.
type Timer struct {
	cfg Config
	now func() time.Time

	phase          Phase
	activityID     string
	phaseEnds      time.Time
	paused         bool
	pausedRemains  time.Duration
	completedFocus int
}

// NewTimer builds an idle timer. A nil clock falls back to time.Now.
func NewTimer(cfg Config, now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{cfg: cfg.normalized(), now: now, phase: PhaseIdle}
}

// Phase returns the current phase after applying due transitions.
func (t *Timer) Phase() Phase {
	t.advance()
	return t.phase
}

// ActivityID returns the schedule block the session is linked to.
func (t *Timer) ActivityID() string {
	return t.activityID
}

// CompletedFocusCount returns the number of finished focus phases.
func (t *Timer) CompletedFocusCount() int {
	t.advance()
	return t.completedFocus
}

// Start begins a focus phase linked to the given schedule block id.
func (t *Timer) Start(activityID string) error {
	t.advance()
	if t.phase != PhaseIdle {
		return ErrAlreadyRunning
	}
	t.activityID = activityID
	t.completedFocus = 0
	t.enterPhase(PhaseFocus)
	return nil
}

// Stop aborts the session and returns the timer to idle.
func (t *Timer) Stop() error {
	if t.phase == PhaseIdle {
		return ErrNotRunning
	}
	t.phase = PhaseIdle
	t.activityID = ""
	t.paused = false
	t.pausedRemains = 0
	return nil
}

// Pause freezes the countdown in place.
func (t *Timer) Pause() error {
	t.advance()
	if t.phase == PhaseIdle {
		return ErrNotRunning
	}
	if t.paused {
		return nil
	}
	t.pausedRemains = t.phaseEnds.Sub(t.now())
	if t.pausedRemains < 0 {
		t.pausedRemains = 0
	}
	t.paused = true
	return nil
}

// Resume continues a paused countdown.
func (t *Timer) Resume() error {
	if t.phase == PhaseIdle {
		return ErrNotRunning
	}
	if !t.paused {
		return ErrNotPaused
	}
	t.phaseEnds = t.now().Add(t.pausedRemains)
	t.paused = false
	t.pausedRemains = 0
	return nil
}

// Remaining reports the time left in the current phase.
func (t *Timer) Remaining() time.Duration {
	t.advance()
	if t.phase == PhaseIdle {
		return 0
	}
	if t.paused {
		return t.pausedRemains
	}
	remaining := t.phaseEnds.Sub(t.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t *Timer) enterPhase(p Phase) {
	t.phase = p
	t.paused = false
	t.pausedRemains = 0
	t.phaseEnds = t.now().Add(t.cfg.phaseLength(p))
}

// advance applies every transition whose deadline has passed. A paused timer
// never transitions.
func (t *Timer) advance() {
	if t.phase == PhaseIdle || t.paused {
		return
	}
	for !t.now().Before(t.phaseEnds) {
		switch t.phase {
		case PhaseFocus:
			t.completedFocus++
			next := PhaseShortBreak
			if t.completedFocus%t.cfg.CyclesPerLongBreak == 0 {
				next = PhaseLongBreak
			}
			t.transitionTo(next)
		case PhaseShortBreak, PhaseLongBreak:
			t.transitionTo(PhaseFocus)
		default:
			return
		}
	}
}

// transitionTo starts the next phase at the instant the previous one ended,
// so a clock jump across several deadlines lands in the correct phase.
func (t *Timer) transitionTo(p Phase) {
	t.phase = p
	t.phaseEnds = t.phaseEnds.Add(t.cfg.phaseLength(p))
}
