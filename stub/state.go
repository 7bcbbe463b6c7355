package stub

import (
	"github.com/securecodex/cityquest/state"
)

// GetGameState returns a fresh game state for tests.
func GetGameState() (*state.GameState, error) {
	return state.NewGameState()
}
