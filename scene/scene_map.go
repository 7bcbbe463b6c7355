package scene

import (
	"fmt"

	"github.com/securecodex/cityquest/clock"
	"github.com/securecodex/cityquest/state"
	"github.com/securecodex/cityquest/uiadapter/event/input"
	"github.com/securecodex/cityquest/world"
)

// geometry of the open map.
var (
	mapBounds      = world.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	mapPlayerStart = world.Point{X: 0, Y: 750}
)

// mapScene is the hub of the game: the open city with the three
// building zones and the 10 minute countdown.
type mapScene struct {
	sceneCommon
}

func newMapScene(sf *sceneFields) Scene {
	return &mapScene{newSceneCommon(SceneNameMap, sf)}
}

// mapRun is the state of one map activation. A fresh run is built on
// every entry; nothing here survives a scene switch or a restart.
type mapRun struct {
	io      IOController
	conf    Config
	sys     *state.SystemData
	clk     *clock.Clock
	cd      *clock.Countdown
	tracker *world.Tracker
	player  *world.Player

	timeUp bool
}

func (sc mapScene) Next() (Scene, error) {
	conf := sc.Config()
	r := &mapRun{
		io:      sc.IO(),
		conf:    conf,
		sys:     sc.State().SystemData,
		clk:     clock.New(),
		cd:      clock.NewCountdown(conf.MapSeconds),
		tracker: world.NewTracker(world.DefaultZones()),
		player:  world.NewPlayer(mapPlayerStart, conf.PlayerSpeed, mapBounds),
	}
	defer r.clk.StopAll()

	if r.sys.Risk.CafeWifiAttempted {
		r.tracker.Close(world.LocationCafe)
	}

	if payload, ok := sc.Scenes().TakePayload(); ok {
		r.applyPayload(payload)
	}
	if err := r.setupView(); err != nil {
		return nil, err
	}

	r.cd.SetSecondFunc(func(remaining int) {
		r.io.SetStatus(r.sys.Score.Points, remaining, r.cd.Urgent())
	})
	r.cd.SetTimeUpFunc(func() {
		r.timeUp = true
		r.io.ShowOverlay(OverlayTimeUp, []string{
			"Time's Up!",
			fmt.Sprintf("Final Score: %d", r.sys.Score.Points),
			"Press R to restart",
		})
	})

	for {
		ev, err := r.io.NextSignal()
		if err != nil {
			return nil, err
		}
		switch ev.Type {
		case input.EventTick:
			r.clk.Advance(ev.Tick)
			r.cd.Advance(ev.Tick)
			if err := r.io.Sync(); err != nil {
				return nil, err
			}
		case input.EventKey:
			next, err := sc.handleKey(r, ev.Key)
			if err != nil {
				return nil, err
			}
			if next != nil {
				return next, nil
			}
		}
	}
}

// applyPayload folds the cafe outcome into the shared state and
// queues the deferred notifications. The payload was consumed on
// take, so a later map entry replays nothing.
func (r *mapRun) applyPayload(p Payload) {
	if !p.FromCafe {
		return
	}
	// coming back from the cafe pops the player out beside it.
	if pos, ok := world.ExitPoint(world.DefaultZones(), world.LocationCafe); ok {
		r.player.Pos = pos
	}

	if p.WifiAttempted {
		r.sys.Risk.CafeWifiAttempted = true
		r.sys.Risk.AvoidedPublicWifi = false
		r.tracker.Close(world.LocationCafe)
		r.notifyLater("Warning! Public WiFi risks your data security")
	}
	if p.CashPayment && !p.WifiAttempted {
		if r.sys.Score.Award(r.conf.CashAwardPoints, state.FlagCafeCash) {
			r.notifyLater(fmt.Sprintf(
				"Smart choice! +%d points for avoiding public WiFi", r.conf.CashAwardPoints))
		}
	}
}

func (sc mapScene) handleKey(r *mapRun, key input.Key) (Scene, error) {
	if r.timeUp {
		// input is frozen after time up except the restart key.
		if key == input.KeyRestart {
			return nil, ErrorRestart
		}
		return nil, nil
	}

	if loc := r.tracker.Entered(); loc != world.LocationNone {
		return sc.handleEnteredKey(r, key, loc)
	}

	dir := directionOf(key)
	if dir == world.DirNone {
		return nil, nil
	}
	r.player.Move(dir, world.MoveStep)
	if err := r.io.SetPlayerPos(r.player.Pos.X, r.player.Pos.Y); err != nil {
		return nil, err
	}

	switch trig := r.tracker.Update(r.player.Pos); trig.Kind {
	case world.TriggerEnter:
		return nil, r.showEntryPopup(trig.Loc)
	case world.TriggerClosed:
		return nil, r.showClosedWarning(trig.Loc)
	}
	return nil, nil
}

func (sc mapScene) handleEnteredKey(r *mapRun, key input.Key, loc world.Location) (Scene, error) {
	switch key {
	case input.KeyEnter:
		switch loc {
		case world.LocationCafe:
			if err := r.io.ClearOverlay(OverlayPopup); err != nil {
				return nil, err
			}
			return sc.Scenes().GetScene(SceneNameCafe)
		case world.LocationHome:
			if err := r.io.ClearOverlay(OverlayPopup); err != nil {
				return nil, err
			}
			return sc.Scenes().GetScene(SceneNameHome)
		}
		// the bank has nothing to go inside; only ESC leaves it.
		return nil, nil
	case input.KeyEscape:
		return nil, r.exitBuilding()
	}
	return nil, nil
}

// exitBuilding pops the player out beside the building. Leaving the
// house grants the home completion points once per play-through.
func (r *mapRun) exitBuilding() error {
	pos, loc, ok := r.tracker.Exit()
	if !ok {
		return nil
	}
	r.player.Pos = pos
	if err := r.io.ClearOverlay(OverlayPopup); err != nil {
		return err
	}
	if err := r.io.SetPlayerVisible(true); err != nil {
		return err
	}
	if err := r.io.SetPlayerPos(pos.X, pos.Y); err != nil {
		return err
	}

	if loc == world.LocationHome {
		if r.sys.Score.Award(r.conf.HomeAwardPoints, state.FlagHomeCompleted) {
			r.showNotice(fmt.Sprintf("Home tasks completed! +%d points", r.conf.HomeAwardPoints))
			return r.updateStatus()
		}
	}
	return nil
}

func (r *mapRun) showEntryPopup(loc world.Location) error {
	if err := r.io.SetPlayerVisible(false); err != nil {
		return err
	}
	var lines []string
	switch loc {
	case world.LocationHome:
		lines = []string{"Welcome to your house!", "Press ENTER to go inside or ESC to leave."}
	case world.LocationCafe:
		lines = []string{"Welcome to the cafe!", "Press ENTER to go inside or ESC to leave."}
	case world.LocationBank:
		lines = []string{"You entered the bank!", "Press ESC to exit."}
	default:
		lines = []string{"You entered a building!", "Press ESC to exit."}
	}
	return r.io.ShowOverlay(OverlayPopup, lines)
}

// showClosedWarning handles stepping on the closed cafe: a transient
// warning, no entry, auto dismissed.
func (r *mapRun) showClosedWarning(loc world.Location) error {
	if loc != world.LocationCafe {
		return nil
	}
	err := r.io.ShowOverlay(OverlayWarning, []string{
		"The cafe is now closed.",
		"The staff asked you to leave after your unsafe WiFi usage.",
	})
	if err != nil {
		return err
	}
	r.clk.AfterFunc(warnDismiss, func() {
		r.io.ClearOverlay(OverlayWarning)
	})
	return nil
}

// notifyLater shows a notification after the standard entry delay.
func (r *mapRun) notifyLater(text string) {
	r.clk.AfterFunc(notifyDelay, func() {
		r.showNotice(text)
	})
}

func (r *mapRun) showNotice(text string) {
	r.io.ShowOverlay(OverlayNotice, []string{text})
	r.clk.AfterFunc(noticeShow, func() {
		r.io.ClearOverlay(OverlayNotice)
	})
}

func (r *mapRun) setupView() error {
	if err := r.io.NewPage(); err != nil {
		return err
	}
	if err := r.io.SetPlayerVisible(true); err != nil {
		return err
	}
	if err := r.io.SetPlayerPos(r.player.Pos.X, r.player.Pos.Y); err != nil {
		return err
	}
	return r.updateStatus()
}

func (r *mapRun) updateStatus() error {
	return r.io.SetStatus(r.sys.Score.Points, r.cd.Remaining(), r.cd.Urgent())
}

func directionOf(key input.Key) world.Direction {
	switch key {
	case input.KeyUp:
		return world.DirUp
	case input.KeyDown:
		return world.DirDown
	case input.KeyLeft:
		return world.DirLeft
	case input.KeyRight:
		return world.DirRight
	}
	return world.DirNone
}
