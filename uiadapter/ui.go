package uiadapter

// UI is the rendering/input collaborator implemented by a front end.
// The core draws through this contract only and never assumes a
// specific rendering technology.
type UI interface {
	Printer
	LinePrompter
	Syncer
}

// Printer is the drawing surface of the front end.
// Coordinates are screen-space; interpretation (pixels, cells) is
// up to the implementation.
type Printer interface {
	// draw free text at a screen-space position.
	DrawText(x, y int, text string) error

	// draw a speech bubble attached to the named speaker.
	DrawBubble(speaker, text string) error

	// show a modal overlay box identified by id, replacing a
	// previous overlay of the same id.
	ShowOverlay(id string, lines []string) error

	// remove the overlay identified by id. unknown id is a no-op.
	ClearOverlay(id string) error

	// update the HUD: score, remaining seconds and an urgency
	// styling hint. urgent never reverts within one scene run.
	SetStatus(score, secondsLeft int, urgent bool) error

	// update player presentation on the active scene.
	SetPlayerPos(x, y float64) error
	SetPlayerVisible(visible bool) error

	// clear the whole screen for a new scene page.
	NewPage() error
}

// LinePrompter serves blocking free-text requests, e.g. credential
// entry in the home puzzle. It is a synchronous request/response
// collaborator, outside the game core's own event stream.
type LinePrompter interface {
	ReadLine(prompt string) (string, error)
}

type Syncer interface {
	// flush buffered drawing to the device.
	Sync() error
}
