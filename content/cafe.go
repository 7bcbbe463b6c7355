package content

import (
	"github.com/securecodex/cityquest/flow"
	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// States of the cafe dialogue. The "phone:" states form the payment
// sub-flow whose transitions are choice driven, unlike the strictly
// ordered conversation around it.
const (
	CafeStateWelcome       flow.StateID = "welcome"
	CafeStateOrder         flow.StateID = "order"
	CafeStateConfirm       flow.StateID = "confirm"
	CafeStateAskPrice      flow.StateID = "ask-price"
	CafeStatePrice         flow.StateID = "price"
	CafeStatePaymentFailed flow.StateID = "phone:payment-failed"
	CafeStateWifiWarning   flow.StateID = "phone:wifi-warning"
	CafeStateWifiRisks     flow.StateID = "phone:wifi-risks"
	CafeStateCashPayment   flow.StateID = "phone:cash-payment"
	CafeStateFarewell      flow.StateID = "farewell"
)

// Speakers of the cafe dialogue prompts.
const (
	SpeakerBarista = "barista"
	SpeakerPlayer  = "player"
	SpeakerPhone   = "phone"
)

// CafeDialogue builds the cafe interaction table from the pack texts.
//
// ENTER always proceeds along the default path, which inside the
// sub-flow is the risky one. ESC changes meaning per state: at the
// WiFi warning it takes the safe cash path, everywhere else it leaves
// the cafe. That asymmetry is deliberate and must survive refactors:
// the risky choice stays the easy choice.
func (p *Pack) CafeDialogue() *flow.Table {
	c := p.Cafe

	linear := func(next flow.StateID) map[flow.Intent]flow.Rule {
		return map[flow.Intent]flow.Rule{
			flow.IntentProceed: {Next: next},
			flow.IntentExit:    {Terminal: true},
		}
	}
	talkKeys := map[input.Key]flow.Intent{
		input.KeyEnter:  flow.IntentProceed,
		input.KeyEscape: flow.IntentExit,
	}

	return &flow.Table{
		Start: CafeStateWelcome,
		Keys: map[flow.StateID]map[input.Key]flow.Intent{
			CafeStateWelcome:       talkKeys,
			CafeStateOrder:         talkKeys,
			CafeStateConfirm:       talkKeys,
			CafeStateAskPrice:      talkKeys,
			CafeStatePrice:         talkKeys,
			CafeStatePaymentFailed: talkKeys,
			CafeStateWifiWarning: {
				input.KeyEnter:  flow.IntentProceed,
				input.KeyEscape: flow.IntentSafe,
			},
			CafeStateWifiRisks:   talkKeys,
			CafeStateCashPayment: talkKeys,
			CafeStateFarewell:    talkKeys,
		},
		Rules: map[flow.StateID]map[flow.Intent]flow.Rule{
			CafeStateWelcome:  linear(CafeStateOrder),
			CafeStateOrder:    linear(CafeStateConfirm),
			CafeStateConfirm:  linear(CafeStateAskPrice),
			CafeStateAskPrice: linear(CafeStatePrice),
			CafeStatePrice:    linear(CafeStatePaymentFailed),

			CafeStatePaymentFailed: linear(CafeStateWifiWarning),
			CafeStateWifiWarning: {
				flow.IntentProceed: {
					Next:    CafeStateWifiRisks,
					Effects: []flow.Effect{flow.EffectMarkWifiAttempted},
				},
				flow.IntentSafe: {
					Next:    CafeStateCashPayment,
					Effects: []flow.Effect{flow.EffectMarkCashPayment},
				},
			},
			CafeStateWifiRisks: {
				flow.IntentProceed: {Terminal: true},
				flow.IntentExit:    {Terminal: true},
			},
			CafeStateCashPayment: linear(CafeStateFarewell),
			CafeStateFarewell: {
				flow.IntentProceed: {Terminal: true},
				flow.IntentExit:    {Terminal: true},
			},
		},
		Prompts: map[flow.StateID]flow.PromptSpec{
			CafeStateWelcome:  {Speaker: SpeakerBarista, Text: c.Welcome, Hint: "Press ENTER to continue"},
			CafeStateOrder:    {Speaker: SpeakerPlayer, Text: c.Order, Hint: "Press ENTER to continue"},
			CafeStateConfirm:  {Speaker: SpeakerBarista, Text: c.Confirm, Hint: "Press ENTER to continue"},
			CafeStateAskPrice: {Speaker: SpeakerPlayer, Text: c.AskPrice, Hint: "Press ENTER to continue"},
			CafeStatePrice:    {Speaker: SpeakerBarista, Text: c.Price, Hint: "Press ENTER to continue"},
			CafeStatePaymentFailed: {
				Speaker: SpeakerPhone,
				Text:    c.PaymentFailed,
				Options: []string{"Connect to Cafe WiFi"},
				Hint:    "Press ENTER to connect or ESC to exit cafe",
			},
			CafeStateWifiWarning: {
				Speaker: SpeakerPhone,
				Text:    c.WifiWarning,
				Options: []string{"Connect", "Pay Cash"},
				Hint:    "Press ENTER to connect, ESC to pay with cash",
			},
			CafeStateWifiRisks: {
				Speaker: SpeakerPhone,
				Text:    c.WifiRisks,
				Options: []string{"Exit Cafe"},
				Hint:    "Press ENTER to exit cafe",
			},
			CafeStateCashPayment: {
				Speaker: SpeakerPhone,
				Text:    c.CashSuccess,
				Options: []string{"Continue"},
				Hint:    "Press ENTER to continue",
			},
			CafeStateFarewell: {Speaker: SpeakerBarista, Text: c.Farewell, Hint: "Press ENTER to leave"},
		},
	}
}
