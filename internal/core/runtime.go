package core

import "time"

// Terminal size used when the real one cannot be read.
const (
	FallbackCols = 80
	FallbackRows = 24
)

// Runtime holds what a front end learns at startup: how big its drawing
// surface is in cells, how often it ticks, and which seed drives the run.
// Zero fields mean "not known yet".
type Runtime struct {
	Cols int
	Rows int
	TPS  int
	Seed int64
}

// Resolve fills zero fields: the fallback terminal size, tps, and a seed
// from the clock.
func (r Runtime) Resolve(tps int) Runtime {
	if r.Cols <= 0 {
		r.Cols = FallbackCols
	}
	if r.Rows <= 0 {
		r.Rows = FallbackRows
	}
	if r.TPS <= 0 {
		r.TPS = tps
	}
	if r.TPS <= 0 {
		r.TPS = 60
	}
	if r.Seed == 0 {
		r.Seed = time.Now().UnixNano()
	}
	return r
}
