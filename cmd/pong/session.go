package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termpong/internal/config"
	"github.com/vovakirdan/termpong/internal/pong"
	"github.com/vovakirdan/termpong/internal/replay"
	"github.com/vovakirdan/termpong/internal/storage"
	"github.com/vovakirdan/termpong/internal/telemetry"
)

// newLogger returns the command logger. Interactive commands own the
// terminal, so without --log-file they log nowhere; fallback is used by
// the rest.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the game configuration and applies the preset.
func loadGameConfig(difficulty string) (config.PongConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.PongConfig{}, "", err
	}
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, preset, err
	}
	return cfg, preset, nil
}

// sessionSeed returns the --seed value, or a time-based seed when unset.
func sessionSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// session is one game with its optional recording and rally log.
type session struct {
	driver   pong.Driver
	recorder *replay.Recorder
	rallies  *telemetry.RallyWriter
	logger   *log.Logger
	seed     int64
}

// newSession builds a game for cfg. With record set, every event is logged
// for a replay; telemetryPath, if set, receives one CSV row per rally.
func newSession(cfg config.PongConfig, seed int64, record bool, telemetryPath string, logger *log.Logger) (*session, error) {
	rallies, err := telemetry.OpenRallyFile(telemetryPath)
	if err != nil {
		return nil, err
	}

	s := &session{rallies: rallies, logger: logger, seed: seed}
	hooks := pong.Hooks{
		OnScore: func(score pong.Scoreboard) {
			logger.Info("score", "left", score.Left, "right", score.Right)
		},
		OnRally: func(r pong.Rally) {
			logger.Debug("rally", "index", r.Index, "hits", r.Hits, "scorer", r.Scorer)
			if err := s.rallies.Write(r); err != nil {
				logger.Warn("could not write rally", "error", err)
			}
		},
	}

	if record {
		s.recorder = replay.NewRecorder(cfg, seed, nil, hooks)
		s.driver = s.recorder
	} else {
		s.driver = pong.Direct(pong.New(cfg, pong.Options{Seed: seed, Hooks: hooks}))
	}
	logger.Info("game created", "seed", seed, "record", record)
	return s, nil
}

// finish closes the rally log and stores the recording, returning its ID
// (0 when nothing was stored).
func (s *session) finish(dbPath string) (int64, error) {
	if err := s.rallies.Close(); err != nil {
		s.logger.Warn("could not close rally log", "error", err)
	}
	if s.recorder == nil || s.recorder.Len() == 0 {
		return 0, nil
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	id, err := s.recorder.Save(store)
	if err != nil {
		return 0, err
	}
	s.logger.Info("replay saved", "id", id, "events", s.recorder.Len())
	return id, nil
}
