package scene

import (
	"strings"

	"github.com/securecodex/cityquest/clock"
	"github.com/securecodex/cityquest/content"
	"github.com/securecodex/cityquest/state"
	"github.com/securecodex/cityquest/uiadapter/event/input"
	"github.com/securecodex/cityquest/world"
)

// geometry of the puzzle room.
var (
	homeBounds      = world.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	homePlayerStart = world.Point{X: 255, Y: 980}
)

// homeScene is the password puzzle room: walk up to objects to
// collect credentials, then log in at the computer. The credentials
// come from the content pack; validation is exact string equality.
type homeScene struct {
	sceneCommon
}

func newHomeScene(sf *sceneFields) Scene {
	return &homeScene{newSceneCommon(SceneNameHome, sf)}
}

// homeRun is the state of one puzzle room activation.
type homeRun struct {
	io     IOController
	script content.HomeScript
	sys    *state.SystemData
	clk    *clock.Clock
	cd     *clock.Countdown
	spots  *world.HotspotTracker
	player *world.Player

	succeeded bool
	gameOver  bool
}

func (sc homeScene) Next() (Scene, error) {
	conf := sc.Config()
	r := &homeRun{
		io:     sc.IO(),
		script: sc.Content().Current().Home,
		sys:    sc.State().SystemData,
		clk:    clock.New(),
		cd:     clock.NewCountdown(conf.HomeSeconds),
		spots:  world.NewHotspotTracker(content.HomeHotspots()),
		player: world.NewPlayer(homePlayerStart, conf.PlayerSpeed, homeBounds),
	}
	defer r.clk.StopAll()

	if err := r.setupView(); err != nil {
		return nil, err
	}

	r.cd.SetSecondFunc(func(remaining int) {
		r.io.SetStatus(r.sys.Score.Points, remaining, r.cd.Urgent())
	})
	r.cd.SetTimeUpFunc(func() {
		r.gameOver = true
		r.io.ShowOverlay(OverlayGameOver, []string{
			"Game Over!",
			"Time's up!",
			"",
			"[Press SPACE to restart]",
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

func (sc homeScene) handleKey(r *homeRun, key input.Key) (Scene, error) {
	if r.gameOver {
		if key == input.KeySpace {
			return nil, ErrorRestart
		}
		return nil, nil
	}
	if r.succeeded {
		// dismissing the success screen restarts the room fresh.
		if key == input.KeySpace {
			return sc.Scenes().GetScene(SceneNameHome)
		}
		return nil, nil
	}

	if key == input.KeyEscape {
		return sc.Scenes().GetScene(SceneNameMap)
	}

	dir := directionOf(key)
	if dir == world.DirNone {
		return nil, nil
	}
	r.player.Move(dir, world.MoveStep)
	if err := r.io.SetPlayerPos(r.player.Pos.X, r.player.Pos.Y); err != nil {
		return nil, err
	}
	for _, id := range r.spots.Update(r.player.Pos) {
		if err := r.interact(id); err != nil {
			return nil, err
		}
		if r.succeeded {
			break
		}
	}
	return nil, nil
}

// interact handles one fired hotspot. Pickup objects flash their
// text; the phone and the computer run blocking line prompts.
func (r *homeRun) interact(id string) error {
	switch id {
	case content.HotspotID:
		return r.flash("ID Number: " + r.script.IDNumber)

	case content.HotspotNote:
		return r.flash(r.script.NoteText)

	case content.HotspotPhone:
		pin, err := r.io.ReadLine("Enter Pin number to unlock phone: ")
		if err != nil {
			return err
		}
		if pin == r.script.IDNumber {
			return r.flash("Phone unlocked! OTP: " + r.script.OTP)
		}
		return r.flash("Incorrect ID number!")

	case content.HotspotComputer:
		return r.loginPrompt()
	}
	return nil
}

// loginPrompt is the computer interaction: choose a credential kind,
// enter it, exact match wins. Wrong entries just flash; there is no
// attempt limit or lockout.
func (r *homeRun) loginPrompt() error {
	option, err := r.io.ReadLine("Choose option:\n1. Enter Password\n2. Enter OTP\n> ")
	if err != nil {
		return err
	}
	switch option {
	case "1":
		password, err := r.io.ReadLine("Enter password for " + r.script.Account + ": ")
		if err != nil {
			return err
		}
		if password == r.script.Password {
			return r.succeed()
		}
		return r.flash("Access Denied! Incorrect password")
	case "2":
		otp, err := r.io.ReadLine("Enter OTP: ")
		if err != nil {
			return err
		}
		if otp == r.script.OTP {
			return r.succeed()
		}
		return r.flash("Access Denied! Incorrect OTP")
	}
	return r.flash("Invalid option selected")
}

func (r *homeRun) succeed() error {
	r.succeeded = true
	return r.io.ShowOverlay(OverlaySuccess, []string{
		"Congratulations!",
		"You are now a cyber criminal!",
		"",
		"Cybersecurity Awareness:",
		"- Never use personal information as passwords",
		"- Avoid using birthdays or common dates",
		"- Use a mix of letters, numbers, and symbols",
		"- Keep your passwords private and unique",
		"- Enable two-factor authentication when possible",
		"",
		"[Press SPACE to continue]",
	})
}

// flash shows a transient object text that clears itself.
func (r *homeRun) flash(text string) error {
	if err := r.io.ShowOverlay(OverlayFlash, strings.Split(text, "\n")); err != nil {
		return err
	}
	r.clk.AfterFunc(flashShow, func() {
		r.io.ClearOverlay(OverlayFlash)
	})
	return nil
}

func (r *homeRun) setupView() error {
	if err := r.io.NewPage(); err != nil {
		return err
	}
	if err := r.io.SetPlayerVisible(true); err != nil {
		return err
	}
	if err := r.io.SetPlayerPos(r.player.Pos.X, r.player.Pos.Y); err != nil {
		return err
	}
	return r.io.SetStatus(r.sys.Score.Points, r.cd.Remaining(), r.cd.Urgent())
}
