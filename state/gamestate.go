// package state holds the per-play-through game data shared across
// scenes: the score ledger and the accumulated risk flags. Nothing
// here is persisted across process restarts; the snapshot support
// exists only to implement a clean in-process restart.
package state

// SystemData is the serializable portion of the game state.
// Field layout is fixed by the codec tags; see snapshot.go.
type SystemData struct {
	Score ScoreLedger `codec:"score"`
	Risk  RiskFlags   `codec:"risk"`
}

// RiskFlags records security-relevant choices the player made.
// They flow between scenes only through transition payloads and
// this struct, never through ambient globals.
type RiskFlags struct {
	// the player attempted to join the cafe's public WiFi.
	// once set, the cafe is closed for the rest of the play-through.
	CafeWifiAttempted bool `codec:"cafe_wifi_attempted"`

	// the player has avoided public WiFi so far. starts true.
	AvoidedPublicWifi bool `codec:"avoided_public_wifi"`
}

// GameState is the process-scoped game data. Create it once at game
// start; Reset restores the initial play-through.
type GameState struct {
	SystemData *SystemData

	baseline []byte // snapshot taken at construction, restored on Reset
}

func NewGameState() (*GameState, error) {
	gs := &GameState{
		SystemData: &SystemData{
			Score: newScoreLedger(),
			Risk:  RiskFlags{AvoidedPublicWifi: true},
		},
	}
	baseline, err := serialize(gs.SystemData)
	if err != nil {
		return nil, err
	}
	gs.baseline = baseline
	return gs, nil
}

// Reset restores the state captured at construction: score zero,
// all award flags cleared, all risk flags back to their defaults.
func (gs *GameState) Reset() error {
	fresh := &SystemData{}
	if err := deserialize(gs.baseline, fresh); err != nil {
		return err
	}
	if fresh.Score.Flags == nil {
		fresh.Score.Flags = map[string]bool{}
	}
	gs.SystemData = fresh
	return nil
}
