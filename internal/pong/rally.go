package pong

import "time"

// Rally summarizes one serve-to-goal exchange.
type Rally struct {
	Index     int
	Direction float64
	Hits      int
	PeakSpeed float64
	Duration  time.Duration
	Scorer    Side
	Score     Scoreboard // After the point
}

// rallyTracker accumulates the current rally from simulated time only, so
// the numbers do not depend on wall-clock jitter.
type rallyTracker struct {
	cur     Rally
	elapsed float64
}

func (t *rallyTracker) begin(index int, direction float64) {
	t.cur = Rally{Index: index, Direction: direction}
	t.elapsed = 0
}

func (t *rallyTracker) hit(speed float64) {
	t.cur.Hits++
	t.cur.PeakSpeed = max(t.cur.PeakSpeed, speed)
}

func (t *rallyTracker) advance(dt, speed float64) {
	t.elapsed += dt
	t.cur.PeakSpeed = max(t.cur.PeakSpeed, speed)
}

func (t *rallyTracker) end(scorer Side, score Scoreboard) Rally {
	r := t.cur
	r.Scorer = scorer
	r.Score = score
	r.Duration = time.Duration(t.elapsed * float64(time.Second))
	return r
}
