// package scene implements the game flow as a chain of scenes.
// Each Scene runs its own blocking loop over the input signal stream
// and hands control to the next scene when it is done. Exactly one
// scene is active at a time; there is no scene stacking.
package scene

// Representing each scene flow.
type Scene interface {
	// Scene updates self to next Scene
	Next() (Scene, error)
	// returns self name
	Name() string
}

// common of scene
type sceneCommon struct {
	*sceneFields

	name string
}

func newSceneCommon(name string, sf *sceneFields) sceneCommon {
	return sceneCommon{
		sceneFields: sf,
		name:        name,
	}
}

func (common sceneCommon) Name() string { return common.name }

// It is used to get current scene's next in scene transition.
// Returned string must be name of next scene, and error controls
// scene transition which is defined in this package.
type NextFunc func() (string, error)

// it is used for defining user custom scene.
type externalScene struct {
	sceneName string
	nextFunc  NextFunc
	*sceneFields
}

func newExternalScene(name string, next_func NextFunc, sf *sceneFields) Scene {
	return &externalScene{
		sceneName:   name,
		nextFunc:    next_func,
		sceneFields: sf,
	}
}

func (ex externalScene) Name() string {
	return ex.sceneName
}

func (ex externalScene) Next() (Scene, error) {
	next_name, err := ex.nextFunc()
	if err != nil {
		return nil, err
	}
	return ex.scenes.GetScene(next_name)
}
