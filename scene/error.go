package scene

import (
	"errors"
)

// Flow is interrupted so that quit immediately.
var ErrorQuit = errors.New("quit")

// Scene flow is interrupted so that start next scene immediately.
// The next scene must be set on the scene holder beforehand.
var ErrorSceneNext = errors.New("go to next scene")

// Flow is interrupted so that the whole play-through restarts from
// the start scene. The manager resets the game state before it
// re-enters the flow; the scene raising this must not reset anything
// itself.
var ErrorRestart = errors.New("restart play-through")

// Requested scene name is not registered on the scene holder.
var ErrorSceneNameNotRegistered = errors.New("scene name is not registered")
