package replay

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/storage"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// recordSession plays a scripted match long enough to include goals.
func recordSession(t *testing.T, cfg config.PongConfig) *Recorder {
	t.Helper()
	clk := &manualClock{now: t0}
	rec := NewRecorder(cfg, 42, clk.Now, pong.Hooks{})

	rec.Apply(pong.TickEvent{At: clk.now})
	rec.Apply(pong.KeyDownEvent{Key: " "})
	for i := 0; i < 1500; i++ {
		switch i % 90 {
		case 10:
			rec.Apply(pong.KeyDownEvent{Key: "w"})
		case 40:
			rec.Apply(pong.KeyUpEvent{Key: "w"})
			rec.Apply(pong.KeyDownEvent{Key: "down"})
		case 70:
			rec.Apply(pong.KeyUpEvent{Key: "down"})
		}
		if i == 600 {
			rec.Apply(pong.ExpandEvent{Avail: pong.Size{W: 1200, H: 900}})
		}
		if i == 900 {
			rec.Apply(pong.RestoreEvent{})
		}
		rec.Apply(pong.TickEvent{At: clk.Advance(16 * time.Millisecond)})
	}
	return rec
}

func TestCodecRoundTrip(t *testing.T) {
	tests := []pong.Event{
		pong.KeyDownEvent{Key: "w"},
		pong.KeyUpEvent{Key: "up"},
		pong.TickEvent{At: t0.Add(250 * time.Millisecond)},
		pong.StartEvent{},
		pong.PauseEvent{},
		pong.ResetEvent{},
		pong.ResizeEvent{W: 1000, H: 625},
		pong.ExpandEvent{Avail: pong.Size{W: 1920, H: 1080}},
		pong.RestoreEvent{},
		pong.ViewportEvent{Avail: pong.Size{W: 1280, H: 720}},
	}

	for _, ev := range tests {
		re, err := Encode(ev, 250*time.Millisecond)
		if err != nil {
			t.Fatalf("Encode(%T) failed: %v", ev, err)
		}
		got, err := Decode(re, t0)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", re.Kind, err)
		}
		if got != ev {
			t.Errorf("%s: decoded %#v, want %#v", re.Kind, got, ev)
		}
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	if _, err := Decode(storage.ReplayEvent{Kind: "warp"}, t0); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

func TestRecorderStampsEventsWithLastTick(t *testing.T) {
	clk := &manualClock{now: t0}
	rec := NewRecorder(config.DefaultPongConfig(), 1, clk.Now, pong.Hooks{})

	rec.Apply(pong.TickEvent{At: t0.Add(50 * time.Millisecond)})
	clk.Advance(10 * time.Millisecond)
	rec.Apply(pong.KeyDownEvent{Key: "w"})

	rep, err := rec.Replay()
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if len(rep.Events) != 2 {
		t.Fatalf("logged %d events, want 2", len(rep.Events))
	}
	if rep.Events[1].At != 50*time.Millisecond {
		t.Errorf("key offset = %v, want the last tick's 50ms", rep.Events[1].At)
	}
	if rep.Duration != 50*time.Millisecond {
		t.Errorf("Duration = %v, want 50ms", rep.Duration)
	}
}

// A key read from the wall clock can be handled before an older tick that
// was still queued. The tick must keep its own time in the log.
func TestRecorderKeepsQueuedTickTime(t *testing.T) {
	clk := &manualClock{now: t0}
	rec := NewRecorder(config.DefaultPongConfig(), 3, clk.Now, pong.Hooks{})

	rec.Apply(pong.StartEvent{})
	rec.Apply(pong.TickEvent{At: t0})
	clk.Advance(20 * time.Millisecond)
	rec.Apply(pong.KeyDownEvent{Key: "w"})
	at := t0
	for n := 0; n < 60; n++ {
		at = at.Add(16 * time.Millisecond)
		rec.Apply(pong.TickEvent{At: at})
	}
	want := rec.Game().Snapshot()

	rep, err := rec.Replay()
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if re := rep.Events[3]; re.Kind != KindTick || re.At != 16*time.Millisecond {
		t.Errorf("queued tick logged as %s at %v, want tick at 16ms", re.Kind, re.At)
	}
	if re := rep.Events[2]; re.At != 0 {
		t.Errorf("key logged at %v, want the preceding tick's 0s", re.At)
	}

	p, err := NewPlayer(&rep, t0, pong.Hooks{})
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	got, err := p.Play(context.Background())
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if got.Hash() != want.Hash() {
		t.Errorf("replay diverged: ball %v, want %v", got.Ball.Pos, want.Ball.Pos)
	}
}

func TestPlaybackReproducesSession(t *testing.T) {
	cfg := config.DefaultPongConfig()
	rec := recordSession(t, cfg)
	want := rec.Game().Snapshot()

	rep, err := rec.Replay()
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	p, err := NewPlayer(&rep, t0, pong.Hooks{})
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	got, err := p.Play(context.Background())
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}

	if got.Hash() != want.Hash() {
		t.Errorf("playback diverged: hash %d, want %d", got.Hash(), want.Hash())
	}
	if got.Score != want.Score {
		t.Errorf("playback score %+v, want %+v", got.Score, want.Score)
	}
	if !p.Done() {
		t.Error("player should be done after Play")
	}
}

func TestPlaybackThroughStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultPongConfig()
	config.ApplyPongPreset(&cfg, config.DifficultyHard)
	rec := recordSession(t, cfg)
	want := rec.Game().Snapshot()

	id, err := rec.Save(store)
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	rep, err := store.Replay(id)
	if err != nil || rep == nil {
		t.Fatalf("Replay(%d) = %v, %v", id, rep, err)
	}
	if rep.EventCount != rec.Len() {
		t.Errorf("stored %d events, recorded %d", rep.EventCount, rec.Len())
	}

	p, err := NewPlayer(rep, t0, pong.Hooks{})
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	if p.Game().Config().Paddle.Height != cfg.Paddle.Height {
		t.Errorf("replay config not restored: paddle height %v, want %v",
			p.Game().Config().Paddle.Height, cfg.Paddle.Height)
	}

	got, err := p.Play(context.Background())
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if got.Hash() != want.Hash() {
		t.Errorf("stored playback diverged: hash %d, want %d", got.Hash(), want.Hash())
	}
}

func TestPlayerAdvance(t *testing.T) {
	rec := recordSession(t, config.DefaultPongConfig())
	rep, err := rec.Replay()
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	var scores []pong.Scoreboard
	p, err := NewPlayer(&rep, t0, pong.Hooks{
		OnScore: func(s pong.Scoreboard) { scores = append(scores, s) },
	})
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}

	if p.Advance(0) {
		t.Fatal("replay finished at offset 0")
	}
	if p.Game().Running() != true {
		t.Error("serve key at offset 0 should have started the game")
	}

	half := p.Length() / 2
	if p.Advance(half) {
		t.Fatal("replay finished at half length")
	}
	if !p.Advance(p.Length()) {
		t.Error("replay not finished at full length")
	}

	last := scores[len(scores)-1]
	if last != rec.Game().Score() {
		t.Errorf("final score %+v, want %+v", last, rec.Game().Score())
	}
}
