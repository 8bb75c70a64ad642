package contact

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// FeedbackDelay is how long a "Copied" label stays up after a successful copy.
const FeedbackDelay = 1800 * time.Millisecond

// Feedback tracks which copy button last succeeded. Each Show starts a new
// generation; Expire only clears the generation it was scheduled for.
type Feedback struct {
	label string
	gen   uint64
}

// Show moves to showing(label) and returns the generation to expire later.
func (f *Feedback) Show(label string) uint64 {
	f.gen++
	f.label = label
	return f.gen
}

// Expire clears the label if gen is still current. It reports whether it did.
func (f *Feedback) Expire(gen uint64) bool {
	if gen != f.gen || f.label == "" {
		return false
	}
	f.label = ""
	return true
}

// Clear returns to idle and invalidates any outstanding generation.
func (f *Feedback) Clear() {
	f.gen++
	f.label = ""
}

func (f Feedback) Label() string { return f.label }

// Showing reports whether label is the one currently marked as copied.
func (f Feedback) Showing(label string) bool {
	return f.label != "" && f.label == label
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Copier copies contact values to a clipboard and keeps the feedback state for
// the copy buttons. Copying is best effort: failures only clear the feedback.
//
// Copier is safe for concurrent use; the reset timer fires on its own goroutine.
type Copier struct {
	clipboard Clipboard
	clock     Clock
	delay     time.Duration
	log       *zap.Logger

	mu       sync.Mutex
	feedback Feedback
	pending  Timer
	onChange func(label string)
}

type CopierOption func(*Copier)

func WithClock(c Clock) CopierOption {
	return func(cp *Copier) { cp.clock = c }
}

func WithDelay(d time.Duration) CopierOption {
	return func(cp *Copier) { cp.delay = d }
}

// NewCopier returns a Copier writing to cb. A nil cb behaves like a missing
// clipboard capability.
func NewCopier(cb Clipboard, log *zap.Logger, opts ...CopierOption) *Copier {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Copier{
		clipboard: cb,
		clock:     systemClock{},
		delay:     FeedbackDelay,
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to run after every feedback change, outside the lock.
func (c *Copier) OnChange(fn func(label string)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Copy writes value to the clipboard. On success the feedback shows label until
// the delay elapses or another Copy supersedes it. On failure the feedback is
// cleared and the error is dropped.
func (c *Copier) Copy(label, value string) {
	err := ErrClipboardUnavailable
	if c.clipboard != nil {
		err = c.clipboard.WriteText(value)
	}

	c.mu.Lock()
	c.stopPendingLocked()
	if err != nil {
		c.feedback.Clear()
		c.log.Debug("clipboard copy failed", zap.String("label", label), zap.Error(err))
	} else {
		gen := c.feedback.Show(label)
		c.pending = c.clock.AfterFunc(c.delay, func() { c.expire(gen) })
	}
	current, notify := c.feedback.Label(), c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(current)
	}
}

func (c *Copier) expire(gen uint64) {
	c.mu.Lock()
	if !c.feedback.Expire(gen) {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify("")
	}
}

// Label returns the label currently marked as copied, or "".
func (c *Copier) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feedback.Label()
}

// Copied reports whether the button for label should read "Copied".
func (c *Copier) Copied(label string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feedback.Showing(label)
}

// Stop cancels a pending reset without changing the feedback.
func (c *Copier) Stop() {
	c.mu.Lock()
	c.stopPendingLocked()
	c.mu.Unlock()
}

func (c *Copier) stopPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
