package scene

import (
	"fmt"
	"time"
)

// Config is the tunable part of the scene flow. Zero value is not
// usable; start from NewConfig.
type Config struct {
	// countdown lengths in seconds.
	MapSeconds  int `toml:"map_seconds"`
	HomeSeconds int `toml:"home_seconds"`

	// point grants. Each is awarded at most once per play-through.
	CashAwardPoints int `toml:"cash_award_points"`
	HomeAwardPoints int `toml:"home_award_points"`

	// player movement speed in world units per second.
	PlayerSpeed float64 `toml:"player_speed"`
}

// NewConfig returns the default scene configuration.
func NewConfig() Config {
	return Config{
		MapSeconds:      600,
		HomeSeconds:     600,
		CashAwardPoints: 100,
		HomeAwardPoints: 100,
		PlayerSpeed:     300,
	}
}

func (c Config) Validate() error {
	if c.MapSeconds <= 0 || c.HomeSeconds <= 0 {
		return fmt.Errorf("scene: countdown seconds must be positive")
	}
	if c.CashAwardPoints < 0 || c.HomeAwardPoints < 0 {
		return fmt.Errorf("scene: award points must not be negative")
	}
	if c.PlayerSpeed <= 0 {
		return fmt.Errorf("scene: player speed must be positive")
	}
	return nil
}

// Presentation timings shared by the scenes. They run on the scene's
// logical clock, so they pause with the scene.
const (
	// delay before a deferred notification appears after returning
	// to the map.
	notifyDelay = 300 * time.Millisecond
	// how long a notification stays before it clears itself.
	noticeShow = 2 * time.Second
	// how long the closed-location warning stays.
	warnDismiss = 3 * time.Second
	// how long an object flash text stays in the home puzzle.
	flashShow = 1500 * time.Millisecond
)
