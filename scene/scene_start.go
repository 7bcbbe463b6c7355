package scene

import (
	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// Overlay IDs shared between the scenes and the front end.
const (
	OverlayTitle    = "title"
	OverlayPopup    = "popup"
	OverlayNotice   = "notice"
	OverlayWarning  = "warning"
	OverlayTimeUp   = "timeup"
	OverlayPhone    = "phone"
	OverlayFlash    = "flash"
	OverlaySuccess  = "success"
	OverlayGameOver = "gameover"
)

type startScene struct {
	sceneCommon
}

func newStartScene(sf *sceneFields) Scene {
	return &startScene{newSceneCommon(SceneNameStart, sf)}
}

// title screen: show the briefing and wait for ENTER.
func (sc startScene) Next() (Scene, error) {
	io := sc.IO()
	if err := io.NewPage(); err != nil {
		return nil, err
	}
	err := io.ShowOverlay(OverlayTitle, []string{
		"TREASURE HUNT",
		"",
		"Explore the city and find hidden treasures!",
		"Visit the House, Cafe, and Bank to uncover clues.",
		"",
		"You only have 10 minutes to solve the mystery!",
		"Use arrow keys to move around the map.",
		"Press ESC to exit buildings.",
		"",
		"Press ENTER to Start",
	})
	if err != nil {
		return nil, err
	}

	if _, err := io.WaitKey(input.KeyEnter); err != nil {
		return nil, err
	}
	if err := io.ClearOverlay(OverlayTitle); err != nil {
		return nil, err
	}
	return sc.Scenes().GetScene(SceneNameMap)
}
