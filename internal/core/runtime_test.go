package core

import "testing"

func TestRuntimeResolve(t *testing.T) {
	got := Runtime{}.Resolve(30)
	if got.Cols != FallbackCols || got.Rows != FallbackRows {
		t.Errorf("size = %dx%d, want %dx%d", got.Cols, got.Rows, FallbackCols, FallbackRows)
	}
	if got.TPS != 30 {
		t.Errorf("TPS = %d, want 30", got.TPS)
	}
	if got.Seed == 0 {
		t.Error("Seed left at zero")
	}
}

func TestRuntimeResolveKeepsSetFields(t *testing.T) {
	in := Runtime{Cols: 120, Rows: 40, TPS: 20, Seed: 7}
	if got := in.Resolve(60); got != in {
		t.Errorf("Resolve changed set fields: %+v", got)
	}
}

func TestRuntimeResolveNoRate(t *testing.T) {
	if got := (Runtime{Seed: 1}).Resolve(0); got.TPS != 60 {
		t.Errorf("TPS = %d, want 60", got.TPS)
	}
}
