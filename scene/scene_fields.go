package scene

import (
	"fmt"

	"github.com/securecodex/cityquest/content"
	"github.com/securecodex/cityquest/state"
)

// common members of scene.
type sceneFields struct {
	io      IOController
	state   *state.GameState
	content content.Provider
	scenes  *sceneHolder
	conf    Config
}

// Get Field Methods.
func (sf sceneFields) IO() IOController          { return sf.io }
func (sf sceneFields) Scenes() *sceneHolder      { return sf.scenes }
func (sf sceneFields) State() *state.GameState   { return sf.state }
func (sf sceneFields) Content() content.Provider { return sf.content }
func (sf sceneFields) Config() Config            { return sf.conf }

const (
	// use for get or set scene name.
	SceneNameStart = "start"
	SceneNameMap   = "map"
	SceneNameCafe  = "cafe"
	SceneNameHome  = "home"
)

// sceneHolder holds scene instances, the forced next scene and the
// pending transition payload.
type sceneHolder struct {
	next Scene

	payload payloadBox

	scenes map[string]Scene
}

func newSceneHolder(sf *sceneFields) *sceneHolder {
	sh := &sceneHolder{}
	sh.scenes = map[string]Scene{
		SceneNameStart: newStartScene(sf),
		SceneNameMap:   newMapScene(sf),
		SceneNameCafe:  newCafeScene(sf),
		SceneNameHome:  newHomeScene(sf),
	}
	return sh
}

func (sh sceneHolder) Next() Scene   { return sh.next }
func (sh sceneHolder) HasNext() bool { return sh.next != nil }

func (sh *sceneHolder) SetNext(s Scene) Scene {
	sh.next = s
	return sh.next
}

func (sh *sceneHolder) SetNextByName(name string) error {
	scene, err := sh.GetScene(name)
	if err != nil {
		return err
	}
	sh.SetNext(scene)
	return nil
}

// SetPayload stores the transition payload for the next map entry.
// A later Set before the payload is taken overwrites it.
func (sh *sceneHolder) SetPayload(p Payload) {
	sh.payload.Set(p)
}

// TakePayload removes and returns the pending payload, if any.
func (sh *sceneHolder) TakePayload() (Payload, bool) {
	return sh.payload.Take()
}

// GetScene returns Scene specified by name.
// If name is not registered yet, it returns nil scene and error including ErrorSceneNameNotRegistered.
func (sh sceneHolder) GetScene(name string) (Scene, error) {
	s, ok := sh.scenes[name]
	if ok {
		return s, nil
	}
	return nil, fmt.Errorf(`scene "%v" is not found: %w`, name, ErrorSceneNameNotRegistered)
}

// register scene to add new flow for the scene transition.
func (sh sceneHolder) registerScene(s Scene) {
	sh.scenes[s.Name()] = s
}

// unregister scene to remove the flow from the scene transition.
func (sh sceneHolder) unRegisterScene(s Scene) {
	delete(sh.scenes, s.Name())
}
