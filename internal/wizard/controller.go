package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/usecase"
)

var (
	ErrStepIncomplete = errors.New("current step is incomplete")
	ErrNotFinalStep   = errors.New("onboarding can only be completed from the final step")
	ErrFinalStep      = errors.New("already at the final step")
	ErrStepOutOfRange = errors.New("step out of range")
	ErrFlowCompleted  = errors.New("onboarding flow already finished")
)

type ControllerConfig struct {
	UserID   string
	Step     int
	Profile  onboarding.Profile
	AutoSave AutoSaveConfig
}

// Controller holds the client-side wizard state. All transitions are
// serialized; the auto-saver only ever sees snapshots.
type Controller struct {
	mu sync.Mutex

	userID    string
	step      int
	draft     onboarding.Profile
	initial   onboarding.Profile
	completed bool

	saver    Saver
	autosave *AutoSaver

	completion *usecase.Completion
}

func NewController(saver Saver, cfg ControllerConfig) *Controller {
	c := &Controller{
		userID:  cfg.UserID,
		step:    onboarding.ClampStep(cfg.Step),
		draft:   cfg.Profile.Clone(),
		initial: cfg.Profile.Clone(),
		saver:   saver,
	}
	c.autosave = NewAutoSaver(c.autoSave, cfg.AutoSave)
	return c
}

// Resume builds a controller from a stored record. A completed record yields
// a terminal controller.
func Resume(saver Saver, rec onboarding.Record, autosave AutoSaveConfig) *Controller {
	c := NewController(saver, ControllerConfig{
		UserID:   rec.UserID,
		Step:     rec.CurrentStep,
		Profile:  rec.Profile,
		AutoSave: autosave,
	})
	if rec.IsCompleted {
		c.completed = true
		c.autosave.Stop()
	}
	return c
}

// Update mutates the draft and re-arms the auto-save timer.
func (c *Controller) Update(fn func(*onboarding.Profile)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return ErrFlowCompleted
	}
	fn(&c.draft)
	c.autosave.Schedule(c.snapshotLocked())
	return nil
}

func (c *Controller) Next(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return ErrFlowCompleted
	}
	if c.step >= onboarding.LastStep {
		return ErrFinalStep
	}
	if !onboarding.CanProceed(c.step, c.draft) {
		return fmt.Errorf("%w: %s", ErrStepIncomplete, onboarding.StepName(c.step))
	}
	c.step++
	return c.saveLocked(ctx)
}

func (c *Controller) Previous(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return ErrFlowCompleted
	}
	if c.step > onboarding.StepIntroduction {
		c.step--
	}
	return c.saveLocked(ctx)
}

// JumpTo moves to any step without consulting the gate.
func (c *Controller) JumpTo(ctx context.Context, step int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return ErrFlowCompleted
	}
	if step < onboarding.StepIntroduction || step > onboarding.LastStep {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	c.step = step
	return c.saveLocked(ctx)
}

func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return ErrFlowCompleted
	}
	return c.saveLocked(ctx)
}

func (c *Controller) Complete(ctx context.Context) (usecase.Completion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return usecase.Completion{}, ErrFlowCompleted
	}
	if c.step != onboarding.LastStep {
		return usecase.Completion{}, ErrNotFinalStep
	}
	if err := onboarding.RequireCompletionFields(c.draft); err != nil {
		return usecase.Completion{}, err
	}

	out, err := c.saver.Complete(ctx, c.userID, onboarding.PatchFromProfile(c.step, c.draft))
	if err != nil {
		return usecase.Completion{}, err
	}
	c.finishLocked()
	c.completion = &out
	return out, nil
}

func (c *Controller) Skip(ctx context.Context) (onboarding.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return onboarding.Record{}, ErrFlowCompleted
	}
	rec, err := c.saver.Skip(ctx, c.userID)
	if err != nil {
		return onboarding.Record{}, err
	}
	c.finishLocked()
	c.step = rec.CurrentStep
	c.draft = rec.Profile.Clone()
	return rec, nil
}

// Reset discards local edits and returns to the first step. Nothing is
// persisted.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return ErrFlowCompleted
	}
	c.autosave.Cancel()
	c.draft = c.initial.Clone()
	c.step = onboarding.StepIntroduction
	return nil
}

// Close stops the auto-saver and drops any pending save.
func (c *Controller) Close() {
	c.autosave.Stop()
}

func (c *Controller) UserID() string { return c.userID }

func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

func (c *Controller) Draft() onboarding.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

func (c *Controller) CanProceed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return onboarding.CanProceed(c.step, c.draft)
}

func (c *Controller) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

func (c *Controller) CompletionPercentage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return onboarding.CompletionPercentage(c.step)
}

// Completion returns the result of a successful Complete call.
func (c *Controller) Completion() (usecase.Completion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.completion == nil {
		return usecase.Completion{}, false
	}
	return *c.completion, true
}

func (c *Controller) finishLocked() {
	c.completed = true
	c.autosave.Stop()
}

func (c *Controller) saveLocked(ctx context.Context) error {
	snap := c.snapshotLocked()
	if _, err := c.saver.SaveProgress(ctx, snap.UserID, snap.Patch()); err != nil {
		return fmt.Errorf("save onboarding progress: %w", err)
	}
	return nil
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{UserID: c.userID, Step: c.step, Profile: c.draft.Clone()}
}

func (c *Controller) autoSave(ctx context.Context, snap Snapshot) error {
	_, err := c.saver.SaveProgress(ctx, snap.UserID, snap.AnswersPatch())
	return err
}
