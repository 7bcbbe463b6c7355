package scene

import (
	"strings"

	"github.com/securecodex/cityquest/content"
	"github.com/securecodex/cityquest/flow"
	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// cafeScene runs the cafe dialogue and its phone payment sub-flow.
// The dialogue itself lives in the content pack as a flow table; this
// scene only pumps keys into a session and renders the prompts.
type cafeScene struct {
	sceneCommon
}

func newCafeScene(sf *sceneFields) Scene {
	return &cafeScene{newSceneCommon(SceneNameCafe, sf)}
}

func (sc cafeScene) Next() (Scene, error) {
	io := sc.IO()
	// fetch the pack once; a hot reload never swaps a running dialogue.
	pack := sc.Content().Current()
	sess := flow.NewSession(pack.CafeDialogue())

	if err := io.NewPage(); err != nil {
		return nil, err
	}
	if err := io.SetPlayerVisible(false); err != nil {
		return nil, err
	}
	if err := sc.render(sess.Prompt()); err != nil {
		return nil, err
	}

	for {
		key, err := io.WaitKey(input.KeyEnter, input.KeyEscape)
		if err != nil {
			return nil, err
		}
		switch res := sess.HandleKey(key); res.Kind {
		case flow.ResultRender:
			if err := sc.render(res.Prompt); err != nil {
				return nil, err
			}
		case flow.ResultSwitch:
			sc.Scenes().SetPayload(Payload{
				FromCafe:      true,
				WifiAttempted: res.Outcome.WifiAttempted,
				CashPayment:   res.Outcome.CashPayment,
			})
			return sc.Scenes().GetScene(SceneNameMap)
		}
		// ResultNoop: key had no meaning in this state, keep waiting.
	}
}

// render presents one dialogue state. Phone states are modal overlays
// on top of the conversation; everything else is a speech bubble.
func (sc cafeScene) render(p flow.PromptSpec) error {
	io := sc.IO()
	if p.Speaker == content.SpeakerPhone {
		lines := strings.Split(p.Text, "\n")
		if len(p.Options) > 0 {
			lines = append(lines, "")
			for _, opt := range p.Options {
				lines = append(lines, "[ "+opt+" ]")
			}
		}
		lines = append(lines, "", p.Hint)
		return io.ShowOverlay(OverlayPhone, lines)
	}

	if err := io.ClearOverlay(OverlayPhone); err != nil {
		return err
	}
	if err := io.DrawBubble(p.Speaker, p.Text); err != nil {
		return err
	}
	if err := io.DrawText(0, 0, p.Hint); err != nil {
		return err
	}
	return io.Sync()
}
