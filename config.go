package cityquest

import (
	"github.com/securecodex/cityquest/scene"
)

// Config holds parameters associating with Game running.
// It might be constructed by NewConfig, not Config{}.
type Config struct {
	SceneConfig scene.Config `toml:"scene"`

	// path to an optional Lua script overriding the built-in
	// dialogue texts and puzzle credentials. Empty uses built-ins.
	ContentScript string `toml:"content_script"`

	// reload the content script whenever it changes on disk.
	// Only meaningful with ContentScript set.
	WatchContent bool `toml:"watch_content"`
}

// construct default Config.
func NewConfig() Config {
	return Config{
		SceneConfig: scene.NewConfig(),
	}
}
