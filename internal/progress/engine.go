package progress

import "time"

// Engine converts raw practice events into persistent progress state: word
// mastery, daily goals, streaks, lifetime stats and level-ups. All writes go
// through the injected Store; no step is transactional across rows, so every
// update is an idempotent upsert keyed by its natural key.
type Engine struct {
	store Store
	audio AudioFeedback

	// now is replaceable in tests
	now func() time.Time
}

// NewEngine creates a progress engine. audio may be nil when the caller has
// no sound capability.
func NewEngine(store Store, audio AudioFeedback) *Engine {
	return &Engine{
		store: store,
		audio: audio,
		now:   time.Now,
	}
}

// today returns the caller-local calendar date as YYYY-MM-DD
func (e *Engine) today() string {
	return e.now().Format("2006-01-02")
}
