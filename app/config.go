// package app runs the game core behind a line-oriented terminal
// front end and owns the application level configuration.
package app

import (
	"errors"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/securecodex/cityquest"
	"github.com/securecodex/cityquest/util/log"
)

const (
	// default configuration file.
	ConfigFile = "cityquest.conf"

	LogFileStdOut  = "stdout"        // specify log outputs to stdout
	LogFileStdErr  = "stderr"        // specify log outputs to stderr
	DefaultLogFile = "cityquest.log" // default output log file.

	LogLevelInfo  = "info"  // logging only information level.
	LogLevelDebug = "debug" // logging all levels, debug and info.
)

// Configure for the Application.
// To build this, use NewConfig instead of struct constructor, Config{}.
type Config struct {
	LogFile  string `toml:"logfile"`
	LogLevel string `toml:"loglevel"`

	Game cityquest.Config `toml:"game"`
}

// return default App config.
func NewConfig() *Config {
	return &Config{
		LogFile:  DefaultLogFile,
		LogLevel: LogLevelInfo,

		Game: cityquest.NewConfig(),
	}
}

// ErrDefaultConfigGenerated implies that the specified config file is not found,
// and instead of that default config is generated and used.
var ErrDefaultConfigGenerated error = errors.New("default config generated")

// if config file exists load it and return.
// if not exists return default config and write it.
func LoadConfigOrDefault(file string) (*Config, error) {
	if _, err := os.Stat(file); err != nil {
		appConf := NewConfig()
		// write default config
		fp, err := os.Create(file)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		if err := toml.NewEncoder(fp).Encode(appConf); err != nil {
			return nil, err
		}
		return appConf, ErrDefaultConfigGenerated
	}

	appConf := &Config{}
	meta, err := toml.DecodeFile(file, appConf)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Info("toml.Decode: undecoded keys exist, ", undecoded)
	}
	return appConf, nil
}

// SetupLogConfig applies the log section of the config.
// Returned value must be called once at end use of logging.
func SetupLogConfig(appConf *Config) (func(), error) {
	// set log level.
	switch level := appConf.LogLevel; level {
	case LogLevelInfo:
		log.SetLevel(log.InfoLevel)
	case LogLevelDebug:
		log.SetLevel(log.DebugLevel)
	default:
		log.Infof("unknown log level(%s). use 'info' level insteadly.", level)
		log.SetLevel(log.InfoLevel)
	}

	// set log destination
	var (
		writer    io.Writer
		closeFunc func()
	)
	switch logfile := appConf.LogFile; logfile {
	case LogFileStdOut, "":
		writer = os.Stdout
		closeFunc = func() {}
	case LogFileStdErr:
		writer = os.Stderr
		closeFunc = func() {}
	default:
		fp, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		writer = fp
		closeFunc = func() { fp.Close() }
	}
	log.SetOutput(writer)
	return closeFunc, nil
}
