package scene

import (
	"context"
	"fmt"

	"github.com/securecodex/cityquest/content"
	"github.com/securecodex/cityquest/state"
	"github.com/securecodex/cityquest/util/log"
)

// SceneManager is entry point of the scene flow transition.
//
// Example:
//
//	  sm := NewSceneManager(...)
//	  defer sm.Free()
//		 // do something
type SceneManager struct {
	sf *sceneFields

	currentScene Scene
}

func NewSceneManager(game IOController, provider content.Provider, state *state.GameState, config Config) *SceneManager {
	sf := &sceneFields{
		io:      game,
		state:   state,
		content: provider,
		conf:    config,
	}

	sh := newSceneHolder(sf)
	sf.scenes = sh // NOTE: cross reference

	return &SceneManager{
		sf: sf,
	}
}

// Free reference cycle. It must be called
// at end use of SceneManager for GC.
func (sm *SceneManager) Free() {
	sm.sf.io = nil
	sm.sf.state = nil
	sm.sf.content = nil
	sm.sf.scenes = nil
}

// run scene transitions starting from start_scene.
// it blocks until done, you can use go func() to avoid blocking main thread.
func (sm *SceneManager) Run(ctx context.Context, start_scene string) (err error) {
	sceneHolder := sm.sf.Scenes()
	sm.currentScene, err = sceneHolder.GetScene(start_scene)
	if err != nil {
		return
	}

	for {
		// check cancellation.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		log.Debug("SceneManager.Run(): starting scene ", sm.currentScene.Name())

		next, err := sm.currentScene.Next()

		switch err {
		case nil:
			// no error, do nothing.
		case ErrorSceneNext:
			// indicates force moving to next scene.
			next = sceneHolder.Next()
			if next == nil {
				return fmt.Errorf("SceneManager.Run(): got going to next scene, but next scene does not set")
			}
		case ErrorRestart:
			// full play-through restart: fresh state, back to start.
			if rerr := sm.sf.State().Reset(); rerr != nil {
				return fmt.Errorf("SceneManager.Run(): restart failed: %w", rerr)
			}
			sceneHolder.TakePayload() // drop anything pending
			next, err = sceneHolder.GetScene(SceneNameStart)
			if err != nil {
				return err
			}
		case ErrorQuit:
			// indicates force quit or normal termination.
			return nil
		default:
			log.Debugf("SceneManager.Run(): %v in %v", err, sm.currentScene.Name())
			return err // error context, example is uiadapter.ErrorPipelineClosed, is remained.
		}

		if next == nil {
			return fmt.Errorf("SceneManager.Run(): scene %v returns nil as next scene", sm.currentScene.Name())
		}

		sm.currentScene = next
		sceneHolder.SetNext(nil)
	}
	// panic("never reached")
}

// RegisterSceneFunc registers a new scene flow using its name and
// NextFunc. If the name already exists its flow is overwritten.
func (sm *SceneManager) RegisterSceneFunc(name string, next_func NextFunc) {
	sm.sf.Scenes().registerScene(newExternalScene(name, next_func, sm.sf))
}

// UnRegisterScene removes the scene flow specified by the name.
func (sm *SceneManager) UnRegisterScene(name string) {
	scene, err := sm.sf.Scenes().GetScene(name)
	if err != nil {
		return
	}
	sm.sf.Scenes().unRegisterScene(scene)
}

// SceneExists reports whether the named scene is registered.
func (sm *SceneManager) SceneExists(name string) bool {
	_, err := sm.sf.Scenes().GetScene(name)
	return err == nil
}
