package state

import (
	"testing"
)

func TestAwardOncePerFlag(t *testing.T) {
	gs, err := NewGameState()
	if err != nil {
		t.Fatal(err)
	}
	score := &gs.SystemData.Score

	if granted := score.Award(100, FlagHomeCompleted); !granted {
		t.Fatal("first award must be granted")
	}
	if granted := score.Award(100, FlagHomeCompleted); granted {
		t.Fatal("second award with same flag must be a no-op")
	}
	if score.Points != 100 {
		t.Fatalf("score = %d after double award, expect 100", score.Points)
	}
}

func TestAwardDistinctFlags(t *testing.T) {
	gs, err := NewGameState()
	if err != nil {
		t.Fatal(err)
	}
	score := &gs.SystemData.Score

	score.Award(100, FlagHomeCompleted)
	score.Award(100, FlagCafeCash)
	if score.Points != 200 {
		t.Fatalf("score = %d with two distinct flags, expect 200", score.Points)
	}
	if !score.Awarded(FlagCafeCash) {
		t.Fatal("Awarded must report granted flag")
	}
}

func TestNegativeAwardRejected(t *testing.T) {
	gs, err := NewGameState()
	if err != nil {
		t.Fatal(err)
	}
	score := &gs.SystemData.Score
	if granted := score.Award(-50, "bogus"); granted {
		t.Fatal("negative award must be rejected")
	}
	if score.Points != 0 {
		t.Fatalf("score = %d after rejected award, expect 0", score.Points)
	}
}

func TestResetRestoresBaseline(t *testing.T) {
	gs, err := NewGameState()
	if err != nil {
		t.Fatal(err)
	}
	gs.SystemData.Score.Award(100, FlagHomeCompleted)
	gs.SystemData.Risk.CafeWifiAttempted = true
	gs.SystemData.Risk.AvoidedPublicWifi = false

	if err := gs.Reset(); err != nil {
		t.Fatal(err)
	}

	if gs.SystemData.Score.Points != 0 {
		t.Errorf("score = %d after reset, expect 0", gs.SystemData.Score.Points)
	}
	if gs.SystemData.Score.Awarded(FlagHomeCompleted) {
		t.Error("award flag survived reset")
	}
	if gs.SystemData.Risk.CafeWifiAttempted {
		t.Error("wifi flag survived reset")
	}
	if !gs.SystemData.Risk.AvoidedPublicWifi {
		t.Error("avoided-wifi default not restored")
	}

	// the reset state can be awarded again.
	if granted := gs.SystemData.Score.Award(100, FlagHomeCompleted); !granted {
		t.Error("award after reset must be granted")
	}
}
