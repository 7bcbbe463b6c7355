// package cityquest is the core of a small cybersecurity awareness
// game: an open city map on a countdown, a cafe with an insecure
// public WiFi temptation and a password puzzle room at home. The
// core is front-end agnostic; anything implementing uiadapter.UI can
// drive it.
package cityquest

import (
	"context"
	"fmt"
	"runtime"

	"github.com/securecodex/cityquest/content"
	"github.com/securecodex/cityquest/scene"
	"github.com/securecodex/cityquest/state"
	"github.com/securecodex/cityquest/uiadapter"
	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// Game is entry point of the application.
// It implements Sender interface to send user event from external.
// But Sender is valid after Game.Init(), accessing it causes panic before initializing.
type Game struct {
	scene *scene.SceneManager
	state *state.GameState

	reloader *content.Reloader

	uiAdapter *uiadapter.UIAdapter
	sender    uiadapter.Sender

	config Config
}

// Constructs empty game object. Initialize it by Init before use.
func NewGame() *Game {
	return &Game{}
}

// Initialize game by UserInterface and game config.
// It returns error of initializing game.
// The empty game config is ok in which use default game Config.
//
// After this, Game.Sender is available.
func (g *Game) Init(ui uiadapter.UI, config Config) error {
	g.uiAdapter = uiadapter.New(ui)
	g.sender = g.uiAdapter.GetInputPort()

	emptyConf := Config{}
	if emptyConf == config {
		config = NewConfig()
	}
	if err := config.SceneConfig.Validate(); err != nil {
		return err
	}
	g.config = config

	gamestate, err := state.NewGameState()
	if err != nil {
		return err
	}
	g.state = gamestate

	provider, err := g.buildContentProvider()
	if err != nil {
		return err
	}

	g.scene = scene.NewSceneManager(g.uiAdapter, provider, gamestate, config.SceneConfig)
	return nil
}

func (g *Game) buildContentProvider() (content.Provider, error) {
	if g.config.ContentScript == "" {
		return content.Static{Pack: content.Default()}, nil
	}
	if g.config.WatchContent {
		r, err := content.NewReloader(g.config.ContentScript)
		if err != nil {
			return nil, err
		}
		g.reloader = r
		return r, nil
	}
	pack, err := content.LoadLuaFile(g.config.ContentScript)
	if err != nil {
		return nil, err
	}
	return content.Static{Pack: pack}, nil
}

// It return input port which is used to send user event.
// But game implements Sender interface, so using this may be special case.
func (g Game) InputPort() uiadapter.Sender {
	if a := g.uiAdapter; a != nil {
		return a.GetInputPort()
	}
	panic("Game: game is not initialized")
}

// Run game main flow.
// It blocks until causing something of error in the flow.
// So you should use it in the other thread.
//
// Example:
//
//	go func() {
//		game.Main()
//	}()
//
// It returns nil if game quits correctly, otherwise return error containing
// any panic in the flow.
func (g *Game) Main() error {
	return withRecoverRun(g.main)
}

// capture panic as error in this thread
func withRecoverRun(run func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			buf := make([]byte, 4096)
			buf_end := runtime.Stack(buf, false)
			err = fmt.Errorf("panic in game.Main: %v\n%s", rec, string(buf[:buf_end]))
		}
	}()
	return run()
}

func (g *Game) main() error {
	defer func() {
		if g.reloader != nil {
			g.reloader.Close()
		}
	}()

	err := g.scene.Run(context.Background(), scene.SceneNameStart)
	if err == uiadapter.ErrorPipelineClosed {
		return nil
	}
	return err
}

// implements uiadapter.Sender interface.
// send input event to game running. it can be used asynchronously.
// For more detail for input event, see input package.
func (g *Game) Send(ev input.Event) {
	if s := g.sender; s != nil {
		s.Send(ev)
	}
}

// implements uiadapter.Sender interface.
// quit game by external.
func (g *Game) Quit() {
	if g.uiAdapter == nil {
		panic("Game: game is not initialized")
	}
	g.uiAdapter.GetInputPort().Quit()
	g.scene.Free()
}
