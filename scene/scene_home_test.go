package scene

import (
	"testing"
	"time"

	"github.com/securecodex/cityquest/uiadapter"
	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// walk from the room start position into the computer's capture
// radius: 21 steps up, then 3 steps left.
func walkToComputer(in uiadapter.Sender) {
	sendKeys(in, input.KeyUp, 21)
	sendKeys(in, input.KeyLeft, 3)
}

func TestHomeSceneLoginWithPassword(t *testing.T) {
	sm, ui, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	ui.LineResponses = []string{"1", "20/06/2004"}

	in := ad.GetInputPort()
	walkToComputer(in)
	in.Send(input.NewEventKey(input.KeySpace)) // dismiss success screen

	h, err := sm.sf.Scenes().GetScene(SceneNameHome)
	if err != nil {
		t.Fatal(err)
	}
	next, err := h.Next()
	if err != nil {
		t.Fatal(err)
	}
	// dismissing success restarts the room fresh.
	if next.Name() != SceneNameHome {
		t.Errorf("next scene = %q, want home", next.Name())
	}

	if !ui.HasOverlay(OverlaySuccess) {
		t.Error("success overlay not shown")
	}
	if len(ui.Prompts) != 2 {
		t.Errorf("prompts = %q, want option then password", ui.Prompts)
	}
}

func TestHomeSceneLoginWithOTP(t *testing.T) {
	sm, ui, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	ui.LineResponses = []string{"2", "4528"}

	in := ad.GetInputPort()
	walkToComputer(in)
	in.Send(input.NewEventKey(input.KeySpace))

	h, err := sm.sf.Scenes().GetScene(SceneNameHome)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Next(); err != nil {
		t.Fatal(err)
	}
	if !ui.HasOverlay(OverlaySuccess) {
		t.Error("success overlay not shown")
	}
}

func TestHomeSceneWrongOTPThenLeave(t *testing.T) {
	sm, ui, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	ui.LineResponses = []string{"2", "9999"}

	in := ad.GetInputPort()
	walkToComputer(in)
	in.Send(input.NewEventKey(input.KeyEscape))

	h, err := sm.sf.Scenes().GetScene(SceneNameHome)
	if err != nil {
		t.Fatal(err)
	}
	next, err := h.Next()
	if err != nil {
		t.Fatal(err)
	}
	if next.Name() != SceneNameMap {
		t.Errorf("next scene = %q, want map", next.Name())
	}

	if ui.HasOverlay(OverlaySuccess) {
		t.Error("wrong OTP must not succeed")
	}
	if got := ui.Overlays[OverlayFlash]; len(got) == 0 || got[0] != "Access Denied! Incorrect OTP" {
		t.Errorf("flash = %q", got)
	}
}

// the phone asks for the PIN printed on the ID card and reveals the
// OTP when it matches.
func TestHomeScenePhoneUnlock(t *testing.T) {
	sm, ui, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	ui.LineResponses = []string{"DSI2024001"}

	in := ad.GetInputPort()
	sendKeys(in, input.KeyRight, 7)
	sendKeys(in, input.KeyUp, 27)
	in.Send(input.NewEventQuit())

	h, err := sm.sf.Scenes().GetScene(SceneNameHome)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Next(); err != uiadapter.ErrorPipelineClosed {
		t.Fatalf("Next() = %v, want pipeline closed", err)
	}

	if got := ui.Overlays[OverlayFlash]; len(got) == 0 || got[0] != "Phone unlocked! OTP: 4528" {
		t.Errorf("flash = %q", got)
	}
}

func TestHomeSceneTimeUpRestart(t *testing.T) {
	conf := NewConfig()
	conf.HomeSeconds = 1
	sm, ui, ad, _ := newTestManager(t, conf)
	defer sm.Free()

	in := ad.GetInputPort()
	in.Send(input.NewEventTick(time.Second))
	// movement is frozen after game over.
	in.Send(input.NewEventKey(input.KeyRight))
	in.Send(input.NewEventKey(input.KeySpace))

	h, err := sm.sf.Scenes().GetScene(SceneNameHome)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Next(); err != ErrorRestart {
		t.Fatalf("Next() = %v, want restart", err)
	}
	if !ui.HasOverlay(OverlayGameOver) {
		t.Error("game over overlay not shown")
	}
}

// a flash message clears itself after its display time.
func TestHomeSceneFlashAutoClear(t *testing.T) {
	sm, ui, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	ui.LineResponses = []string{"bad-pin"}

	in := ad.GetInputPort()
	sendKeys(in, input.KeyRight, 7)
	sendKeys(in, input.KeyUp, 27)
	in.Send(input.NewEventTick(2 * time.Second))
	in.Send(input.NewEventQuit())

	h, err := sm.sf.Scenes().GetScene(SceneNameHome)
	if err != nil {
		t.Fatal(err)
	}
	h.Next()

	if ui.HasOverlay(OverlayFlash) {
		t.Error("flash must clear itself")
	}
}
