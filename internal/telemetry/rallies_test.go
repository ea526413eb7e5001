package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/termpong/internal/pong"
)

func TestRallyWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewRallyWriter(&buf)

	rallies := []pong.Rally{
		{Index: 1, Direction: 1, Hits: 3, PeakSpeed: 393.4, Duration: 2500 * time.Millisecond,
			Scorer: pong.SideLeft, Score: pong.Scoreboard{Left: 1}},
		{Index: 2, Direction: -1, Hits: 0, PeakSpeed: 360, Duration: 1100 * time.Millisecond,
			Scorer: pong.SideRight, Score: pong.Scoreboard{Left: 1, Right: 1}},
	}
	for _, r := range rallies {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write() failed: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"rally,served_toward,hits,peak_speed,duration_ms,scorer,scorer_points",
		"1,right,3,393.4,2500,left,1",
		"2,left,0,360,1100,right,1",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestNilRallyWriter(t *testing.T) {
	var w *RallyWriter
	if err := w.Write(pong.Rally{}); err != nil {
		t.Errorf("nil writer Write() = %v, want nil", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("nil writer Close() = %v, want nil", err)
	}
}

func TestOpenRallyFile(t *testing.T) {
	w, err := OpenRallyFile("")
	if err != nil || w != nil {
		t.Fatalf("OpenRallyFile(\"\") = %v, %v; want nil, nil", w, err)
	}

	path := filepath.Join(t.TempDir(), "out", "rallies.csv")
	w, err = OpenRallyFile(path)
	if err != nil {
		t.Fatalf("OpenRallyFile() failed: %v", err)
	}
	if err := w.Write(pong.Rally{Index: 1, Direction: 1, Scorer: pong.SideRight}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "rally,") {
		t.Errorf("file does not start with the header: %q", data)
	}
}

func TestOpenRallyFileAppendsSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rallies.csv")

	for session := 1; session <= 2; session++ {
		w, err := OpenRallyFile(path)
		if err != nil {
			t.Fatalf("session %d: OpenRallyFile() failed: %v", session, err)
		}
		for i := 1; i <= 2; i++ {
			r := pong.Rally{Index: i, Direction: 1, Scorer: pong.SideLeft, Score: pong.Scoreboard{Left: i}}
			if err := w.Write(r); err != nil {
				t.Fatalf("session %d: Write() failed: %v", session, err)
			}
		}
		if err := w.Close(); err != nil {
			t.Fatalf("session %d: Close() failed: %v", session, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want a header and 4 rows:\n%s", len(lines), data)
	}
	if headers := strings.Count(string(data), "rally,served_toward"); headers != 1 {
		t.Errorf("header written %d times, want once", headers)
	}
	if lines[3] != "1,right,0,0,0,left,1" {
		t.Errorf("second session's first row = %q", lines[3])
	}
}
