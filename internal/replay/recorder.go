package replay

import (
	"time"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/storage"
)

// Recorder applies events to a game and logs them. A game is a pure
// function of its seed, configuration and event stream, so the log is
// enough to reproduce the session.
type Recorder struct {
	game   *pong.Game
	cfg    config.PongConfig
	seed   int64
	start  time.Time
	last   time.Duration // Offset of the last tick
	length time.Duration
	events []storage.ReplayEvent
}

// NewRecorder creates a game whose inputs are logged. Offsets are relative
// to source() at creation; nil means time.Now.
func NewRecorder(cfg config.PongConfig, seed int64, source func() time.Time, hooks pong.Hooks) *Recorder {
	if source == nil {
		source = time.Now
	}
	return &Recorder{
		game:  pong.New(cfg, pong.Options{Seed: seed, Hooks: hooks}),
		cfg:   cfg,
		seed:  seed,
		start: source(),
	}
}

// Game returns the recorded game. Mutate it only through Apply.
func (r *Recorder) Game() *pong.Game {
	return r.game
}

// Apply logs and applies ev. Ticks are logged at their own time, which is
// what the game steps on. Other events only need their position in the
// stream, so they share the offset of the last tick.
func (r *Recorder) Apply(ev pong.Event) {
	at := r.last
	if tick, ok := ev.(pong.TickEvent); ok {
		at = tick.At.Sub(r.start)
		r.last = at
		r.length = max(r.length, at)
	}

	if re, err := Encode(ev, at); err == nil {
		r.events = append(r.events, re)
	}
	r.game.Apply(ev)
}

// Len returns the number of logged events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Replay returns the recording in its stored form.
func (r *Recorder) Replay() (storage.Replay, error) {
	data, err := config.MarshalPong(r.cfg)
	if err != nil {
		return storage.Replay{}, err
	}
	events := make([]storage.ReplayEvent, len(r.events))
	copy(events, r.events)
	return storage.Replay{
		Seed:       r.seed,
		Config:     string(data),
		Duration:   r.length,
		EventCount: len(events),
		Events:     events,
	}, nil
}

// Save stores the recording and returns its ID.
func (r *Recorder) Save(store *storage.Store) (int64, error) {
	rep, err := r.Replay()
	if err != nil {
		return 0, err
	}
	return store.SaveReplay(rep)
}
