package app

import (
	"context"
	"fmt"
	"os"

	"github.com/securecodex/cityquest"
	"github.com/securecodex/cityquest/util/log"
)

// entry point of main application. appConf nil is OK,
// use default if it is.
func Main(appConf *Config) error {
	if appConf == nil {
		appConf = NewConfig()
	}

	// returned value must be called once.
	reset, err := SetupLogConfig(appConf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log configuration failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "Hint: try to change config logfile from %v\n", appConf.LogFile)
		return err
	}
	defer reset()

	term := NewTerminal(os.Stdout)
	game := cityquest.NewGame()
	if err := game.Init(term, appConf.Game); err != nil {
		log.Info("Error: Game.Init FAIL: ", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go term.RunTicker(ctx, game)
	go term.RunInput(game, os.Stdin)

	if err := game.Main(); err != nil {
		log.Info("Error: game aborted: ", err)
		return err
	}
	return nil
}
