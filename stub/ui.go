// package stub provides test doubles shared by the package tests:
// a recording UI front end and pre-built game objects.
package stub

import (
	"fmt"

	"github.com/securecodex/cityquest/uiadapter"
)

// GameUI is a recording uiadapter.UI for tests. Every draw call is
// remembered for later assertion; ReadLine answers from a scripted
// queue. It is not safe for concurrent use, which matches the single
// threaded scene flow.
type GameUI struct {
	// last lines shown per overlay id; removed again on clear.
	Overlays map[string][]string
	// bubbles in draw order as "speaker: text".
	Bubbles []string
	// free texts in draw order.
	Texts []string
	// prompts passed to ReadLine in call order.
	Prompts []string

	// scripted ReadLine answers, consumed front to back.
	LineResponses []string

	Score       int
	SecondsLeft int
	Urgent      bool

	PlayerX, PlayerY float64
	PlayerVisible    bool

	Pages int
	Syncs int
}

func NewGameUI() *GameUI {
	return &GameUI{Overlays: map[string][]string{}}
}

// NewIOController returns a UIAdapter bound to a fresh recording UI.
// Feed events through adapter.GetInputPort() before or while running
// a scene.
func NewIOController() (*uiadapter.UIAdapter, *GameUI) {
	ui := NewGameUI()
	return uiadapter.New(ui), ui
}

func (ui *GameUI) DrawText(x, y int, text string) error {
	ui.Texts = append(ui.Texts, text)
	return nil
}

func (ui *GameUI) DrawBubble(speaker, text string) error {
	ui.Bubbles = append(ui.Bubbles, speaker+": "+text)
	return nil
}

func (ui *GameUI) ShowOverlay(id string, lines []string) error {
	ui.Overlays[id] = lines
	return nil
}

func (ui *GameUI) ClearOverlay(id string) error {
	delete(ui.Overlays, id)
	return nil
}

func (ui *GameUI) SetStatus(score, secondsLeft int, urgent bool) error {
	ui.Score = score
	ui.SecondsLeft = secondsLeft
	ui.Urgent = urgent
	return nil
}

func (ui *GameUI) SetPlayerPos(x, y float64) error {
	ui.PlayerX, ui.PlayerY = x, y
	return nil
}

func (ui *GameUI) SetPlayerVisible(visible bool) error {
	ui.PlayerVisible = visible
	return nil
}

func (ui *GameUI) NewPage() error {
	ui.Pages++
	return nil
}

func (ui *GameUI) Sync() error {
	ui.Syncs++
	return nil
}

func (ui *GameUI) ReadLine(prompt string) (string, error) {
	ui.Prompts = append(ui.Prompts, prompt)
	if len(ui.LineResponses) == 0 {
		return "", fmt.Errorf("stub: no scripted response for prompt %q", prompt)
	}
	resp := ui.LineResponses[0]
	ui.LineResponses = ui.LineResponses[1:]
	return resp, nil
}

// HasOverlay reports whether the overlay id is currently shown.
func (ui *GameUI) HasOverlay(id string) bool {
	_, ok := ui.Overlays[id]
	return ok
}
