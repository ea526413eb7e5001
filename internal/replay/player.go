package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/storage"
)

// Player re-applies a stored replay to a fresh game at its own pace.
type Player struct {
	game   *pong.Game
	events []pong.Event
	at     []time.Duration
	next   int
	length time.Duration
}

// NewPlayer decodes rep and builds the game it was recorded against.
// Tick times are rebased onto start.
func NewPlayer(rep *storage.Replay, start time.Time, hooks pong.Hooks) (*Player, error) {
	cfg, err := config.ParsePong([]byte(rep.Config))
	if err != nil {
		return nil, fmt.Errorf("replay %d: %w", rep.ID, err)
	}

	p := &Player{
		game:   pong.New(cfg, pong.Options{Seed: rep.Seed, Hooks: hooks}),
		events: make([]pong.Event, 0, len(rep.Events)),
		at:     make([]time.Duration, 0, len(rep.Events)),
		length: rep.Duration,
	}
	for _, re := range rep.Events {
		ev, err := Decode(re, start)
		if err != nil {
			return nil, err
		}
		p.events = append(p.events, ev)
		p.at = append(p.at, re.At)
	}
	return p, nil
}

// Game returns the game being played back.
func (p *Player) Game() *pong.Game {
	return p.game
}

// Length returns the recorded duration.
func (p *Player) Length() time.Duration {
	return p.length
}

// Advance applies every event recorded at or before offset and reports
// whether the replay is exhausted.
func (p *Player) Advance(offset time.Duration) bool {
	for p.next < len(p.events) && p.at[p.next] <= offset {
		p.game.Apply(p.events[p.next])
		p.next++
	}
	return p.Done()
}

// Done reports whether every event has been applied.
func (p *Player) Done() bool {
	return p.next >= len(p.events)
}

// Play runs the remaining events through the game's event loop as fast as
// possible and returns the final state.
func (p *Player) Play(ctx context.Context) (pong.Snapshot, error) {
	pending := p.events[p.next:]
	p.next = len(p.events)

	events := make(chan pong.Event)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer close(events)
		for _, ev := range pending {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := pong.Run(ctx, p.game, events, nil); err != nil {
		return p.game.Snapshot(), err
	}
	return p.game.Snapshot(), nil
}
