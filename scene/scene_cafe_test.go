package scene

import (
	"testing"
	"time"

	"github.com/securecodex/cityquest/uiadapter/event/input"
)

func TestCafeSceneSafePath(t *testing.T) {
	sm, ui, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	in := ad.GetInputPort()
	// welcome .. payment failed, then the WiFi warning.
	for i := 0; i < 6; i++ {
		in.Send(input.NewEventKey(input.KeyEnter))
	}
	in.Send(input.NewEventKey(input.KeyEscape)) // pay cash
	in.Send(input.NewEventKey(input.KeyEnter))  // -> farewell
	in.Send(input.NewEventKey(input.KeyEnter))  // leave

	cafe, err := sm.sf.Scenes().GetScene(SceneNameCafe)
	if err != nil {
		t.Fatal(err)
	}
	next, err := cafe.Next()
	if err != nil {
		t.Fatal(err)
	}
	if next.Name() != SceneNameMap {
		t.Fatalf("next scene = %q, want map", next.Name())
	}

	p, ok := sm.sf.Scenes().TakePayload()
	if !ok {
		t.Fatal("cafe must leave a payload")
	}
	if !p.FromCafe || !p.CashPayment || p.WifiAttempted {
		t.Errorf("payload = %+v", p)
	}
	if _, ok := sm.sf.Scenes().TakePayload(); ok {
		t.Error("payload must be consumed once")
	}

	if len(ui.Bubbles) == 0 {
		t.Error("dialogue drew no speech bubbles")
	}
}

func TestCafeSceneRiskyPath(t *testing.T) {
	sm, ui, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	in := ad.GetInputPort()
	// straight through to the risk alert, then exit from it.
	for i := 0; i < 8; i++ {
		in.Send(input.NewEventKey(input.KeyEnter))
	}

	cafe, err := sm.sf.Scenes().GetScene(SceneNameCafe)
	if err != nil {
		t.Fatal(err)
	}
	next, err := cafe.Next()
	if err != nil {
		t.Fatal(err)
	}
	if next.Name() != SceneNameMap {
		t.Fatalf("next scene = %q, want map", next.Name())
	}

	p, ok := sm.sf.Scenes().TakePayload()
	if !ok {
		t.Fatal("cafe must leave a payload")
	}
	if !p.WifiAttempted || p.CashPayment {
		t.Errorf("payload = %+v", p)
	}

	// the phone sub-flow must have rendered as overlays.
	if len(ui.Bubbles) == 0 {
		t.Error("dialogue drew no speech bubbles")
	}
}

// leaving before the phone sub-flow sets no flags at all.
func TestCafeSceneEarlyExit(t *testing.T) {
	sm, _, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	in := ad.GetInputPort()
	in.Send(input.NewEventKey(input.KeyEnter))
	in.Send(input.NewEventKey(input.KeyEscape))

	cafe, err := sm.sf.Scenes().GetScene(SceneNameCafe)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cafe.Next(); err != nil {
		t.Fatal(err)
	}

	p, ok := sm.sf.Scenes().TakePayload()
	if !ok {
		t.Fatal("cafe must leave a payload")
	}
	if p.WifiAttempted || p.CashPayment {
		t.Errorf("early exit payload = %+v", p)
	}
}

// ticks arriving during the dialogue are discarded by WaitKey and do
// not advance the conversation.
func TestCafeSceneIgnoresTicks(t *testing.T) {
	sm, _, ad, _ := newTestManager(t, NewConfig())
	defer sm.Free()

	in := ad.GetInputPort()
	in.Send(input.NewEventTick(time.Second))
	in.Send(input.NewEventKey(input.KeyEnter))
	in.Send(input.NewEventTick(time.Second))
	in.Send(input.NewEventKey(input.KeyEscape))

	cafe, err := sm.sf.Scenes().GetScene(SceneNameCafe)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cafe.Next(); err != nil {
		t.Fatal(err)
	}
	if _, ok := sm.sf.Scenes().TakePayload(); !ok {
		t.Fatal("cafe must complete from keys alone")
	}
}
