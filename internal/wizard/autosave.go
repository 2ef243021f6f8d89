package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/logging"
)

const (
	DefaultAutoSaveDelay   = 2 * time.Second
	DefaultAutoSaveTimeout = 10 * time.Second
)

type SaveFunc func(ctx context.Context, snap Snapshot) error

type AutoSaveConfig struct {
	Delay   time.Duration
	Timeout time.Duration
	Clock   Clock
	Logger  *logging.Logger
}

// AutoSaver debounces draft changes: every Schedule call re-arms the timer and
// only the latest snapshot is saved once the quiet period elapses.
type AutoSaver struct {
	mu      sync.Mutex
	save    SaveFunc
	delay   time.Duration
	timeout time.Duration
	clock   Clock
	logger  *logging.Logger

	timer   Timer
	pending *Snapshot
	stopped bool
}

func NewAutoSaver(save SaveFunc, cfg AutoSaveConfig) *AutoSaver {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultAutoSaveDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultAutoSaveTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = RealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &AutoSaver{
		save:    save,
		delay:   cfg.Delay,
		timeout: cfg.Timeout,
		clock:   cfg.Clock,
		logger:  cfg.Logger,
	}
}

func (a *AutoSaver) Schedule(snap Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	snap.Profile = snap.Profile.Clone()
	a.pending = &snap
	a.timer = a.clock.AfterFunc(a.delay, a.fire)
}

// Cancel drops the pending save, if any. Later Schedule calls still work.
func (a *AutoSaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
}

// Stop cancels the pending save and disables the saver for good.
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
	a.stopped = true
}

func (a *AutoSaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

func (a *AutoSaver) cancelLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = nil
}

func (a *AutoSaver) fire() {
	a.mu.Lock()
	snap := a.pending
	a.pending = nil
	a.timer = nil
	stopped := a.stopped
	a.mu.Unlock()

	if snap == nil || stopped || snap.Step == onboarding.StepIntroduction {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.save(ctx, *snap); err != nil {
		a.logger.WarnContext(ctx, "onboarding autosave failed",
			"user_id", snap.UserID,
			"step", snap.Step,
			"error", err,
		)
		return
	}
	a.logger.DebugContext(ctx, "onboarding autosaved", "user_id", snap.UserID, "step", snap.Step)
}
