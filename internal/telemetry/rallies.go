// Package telemetry writes per-rally statistics as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/termpong/internal/pong"
)

// RallyRecord is one CSV row.
type RallyRecord struct {
	Rally        int     `csv:"rally"`
	ServedToward string  `csv:"served_toward"`
	Hits         int     `csv:"hits"`
	PeakSpeed    float64 `csv:"peak_speed"`
	DurationMS   int64   `csv:"duration_ms"`
	Scorer       string  `csv:"scorer"`
	ScorerPoints int     `csv:"scorer_points"`
}

// NewRallyRecord converts a finished rally to a row.
func NewRallyRecord(r pong.Rally) RallyRecord {
	toward := pong.SideRight
	if r.Direction < 0 {
		toward = pong.SideLeft
	}
	return RallyRecord{
		Rally:        r.Index,
		ServedToward: toward.String(),
		Hits:         r.Hits,
		PeakSpeed:    r.PeakSpeed,
		DurationMS:   r.Duration.Milliseconds(),
		Scorer:       r.Scorer.String(),
		ScorerPoints: r.Score.Of(r.Scorer),
	}
}

// RallyWriter appends rally rows, writing the header with the first one.
// A nil *RallyWriter discards everything.
type RallyWriter struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewRallyWriter writes rows to w.
func NewRallyWriter(w io.Writer) *RallyWriter {
	return &RallyWriter{out: w}
}

// OpenRallyFile opens the CSV file at path for appending, creating it if
// needed. The header is written only into an empty file, so several
// sessions can share one file. Returns nil if path is empty (telemetry
// disabled).
func OpenRallyFile(path string) (*RallyWriter, error) {
	if path == "" {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: creating directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("telemetry: opening %s: %w", path, err)
	}

	return &RallyWriter{out: f, closer: f, headerWritten: info.Size() > 0}, nil
}

// Write appends one rally.
func (w *RallyWriter) Write(r pong.Rally) error {
	if w == nil {
		return nil
	}

	records := []RallyRecord{NewRallyRecord(r)}

	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("telemetry: writing rally: %w", err)
		}
		w.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("telemetry: writing rally: %w", err)
	}
	return nil
}

// Close closes the underlying file, if any.
func (w *RallyWriter) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
