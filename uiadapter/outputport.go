package uiadapter

import (
	"github.com/securecodex/cityquest/width"
)

// outputPort normalizes scene drawing requests before they reach the
// front end: overlay lines are padded to one uniform width so every
// renderer receives a rectangular box.
type outputPort struct {
	ui UI
}

func newOutputPort(ui UI) *outputPort {
	return &outputPort{ui: ui}
}

func (port *outputPort) DrawText(x, y int, text string) error {
	return port.ui.DrawText(x, y, text)
}

func (port *outputPort) DrawBubble(speaker, text string) error {
	return port.ui.DrawBubble(speaker, text)
}

func (port *outputPort) ShowOverlay(id string, lines []string) error {
	boxWidth := 0
	for _, line := range lines {
		if w := width.StringWidth(line); w > boxWidth {
			boxWidth = w
		}
	}
	boxed := make([]string, len(lines))
	for i, line := range lines {
		boxed[i] = width.Center(line, boxWidth)
	}
	if err := port.ui.ShowOverlay(id, boxed); err != nil {
		return err
	}
	return port.ui.Sync()
}

func (port *outputPort) ClearOverlay(id string) error {
	if err := port.ui.ClearOverlay(id); err != nil {
		return err
	}
	return port.ui.Sync()
}

func (port *outputPort) SetStatus(score, secondsLeft int, urgent bool) error {
	return port.ui.SetStatus(score, secondsLeft, urgent)
}

func (port *outputPort) SetPlayerPos(x, y float64) error {
	return port.ui.SetPlayerPos(x, y)
}

func (port *outputPort) SetPlayerVisible(visible bool) error {
	return port.ui.SetPlayerVisible(visible)
}

func (port *outputPort) NewPage() error {
	if err := port.ui.NewPage(); err != nil {
		return err
	}
	return port.ui.Sync()
}

func (port *outputPort) Sync() error {
	return port.ui.Sync()
}

// ReadLine forwards a blocking free-text request to the front end.
func (port *outputPort) ReadLine(prompt string) (string, error) {
	return port.ui.ReadLine(prompt)
}
