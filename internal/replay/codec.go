// Package replay records the event stream of a match and plays it back
// deterministically against a fresh game.
package replay

import (
	"fmt"
	"time"

	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/storage"
)

// Event kinds as stored in the replay log.
const (
	KindKeyDown  = "keydown"
	KindKeyUp    = "keyup"
	KindTick     = "tick"
	KindStart    = "start"
	KindPause    = "pause"
	KindReset    = "reset"
	KindResize   = "resize"
	KindExpand   = "expand"
	KindRestore  = "restore"
	KindViewport = "viewport"
)

// Encode converts a game event applied at offset at into its stored form.
func Encode(ev pong.Event, at time.Duration) (storage.ReplayEvent, error) {
	re := storage.ReplayEvent{At: at}
	switch e := ev.(type) {
	case pong.KeyDownEvent:
		re.Kind, re.Key = KindKeyDown, e.Key
	case pong.KeyUpEvent:
		re.Kind, re.Key = KindKeyUp, e.Key
	case pong.TickEvent:
		re.Kind = KindTick
	case pong.StartEvent:
		re.Kind = KindStart
	case pong.PauseEvent:
		re.Kind = KindPause
	case pong.ResetEvent:
		re.Kind = KindReset
	case pong.ResizeEvent:
		re.Kind, re.W, re.H = KindResize, e.W, e.H
	case pong.ExpandEvent:
		re.Kind, re.W, re.H = KindExpand, e.Avail.W, e.Avail.H
	case pong.RestoreEvent:
		re.Kind = KindRestore
	case pong.ViewportEvent:
		re.Kind, re.W, re.H = KindViewport, e.Avail.W, e.Avail.H
	default:
		return re, fmt.Errorf("replay: cannot encode %T", ev)
	}
	return re, nil
}

// Decode converts a stored event back into a game event. Tick times are
// rebased onto start.
func Decode(re storage.ReplayEvent, start time.Time) (pong.Event, error) {
	switch re.Kind {
	case KindKeyDown:
		return pong.KeyDownEvent{Key: re.Key}, nil
	case KindKeyUp:
		return pong.KeyUpEvent{Key: re.Key}, nil
	case KindTick:
		return pong.TickEvent{At: start.Add(re.At)}, nil
	case KindStart:
		return pong.StartEvent{}, nil
	case KindPause:
		return pong.PauseEvent{}, nil
	case KindReset:
		return pong.ResetEvent{}, nil
	case KindResize:
		return pong.ResizeEvent{W: re.W, H: re.H}, nil
	case KindExpand:
		return pong.ExpandEvent{Avail: pong.Size{W: re.W, H: re.H}}, nil
	case KindRestore:
		return pong.RestoreEvent{}, nil
	case KindViewport:
		return pong.ViewportEvent{Avail: pong.Size{W: re.W, H: re.H}}, nil
	default:
		return nil, fmt.Errorf("replay: unknown event kind %q at seq %d", re.Kind, re.Seq)
	}
}
