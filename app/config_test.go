package app

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigOrDefault(t *testing.T) {
	file := filepath.Join(t.TempDir(), ConfigFile)

	// first load generates the default file.
	conf, err := LoadConfigOrDefault(file)
	if err != ErrDefaultConfigGenerated {
		t.Fatalf("first load: err = %v, want default generated", err)
	}
	if conf.LogFile != DefaultLogFile || conf.LogLevel != LogLevelInfo {
		t.Errorf("default conf = %+v", conf)
	}

	// second load reads it back.
	loaded, err := LoadConfigOrDefault(file)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if *loaded != *conf {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, conf)
	}
}

func TestConfigDefaultsAreValid(t *testing.T) {
	conf := NewConfig()
	if err := conf.Game.SceneConfig.Validate(); err != nil {
		t.Errorf("default scene config invalid: %v", err)
	}
}
