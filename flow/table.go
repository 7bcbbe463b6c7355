// package flow is the branching-step engine behind every scripted
// location interaction. A declarative Table maps (state, intent) to
// (next state, side effects); a Session walks one run of a table.
//
// Keys never carry meaning globally. Each state declares its own
// key-to-intent mapping, so the same physical key (typically ESC) can
// mean "leave" in one state and "take the safe path" in another
// without a global handler guessing from context.
package flow

import (
	"fmt"

	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// StateID names one state of an interaction script. Sub-flow states
// conventionally carry a "phone:" style prefix but the engine does
// not interpret the name.
type StateID string

// Intent is what a key press means in the current state.
type Intent int8

const (
	IntentNone Intent = iota
	// proceed along the default path. The default path is the risky
	// one on purpose: the risky choice must stay the easy choice.
	IntentProceed
	// take the safe alternative path inside a sub-flow.
	IntentSafe
	// leave the location now.
	IntentExit
)

func (i Intent) String() string {
	switch i {
	case IntentProceed:
		return "proceed"
	case IntentSafe:
		return "safe"
	case IntentExit:
		return "exit"
	}
	return "none"
}

// Effect is a session-scoped side effect applied by a transition.
type Effect int8

const (
	EffectNone Effect = iota
	// record that the player attempted the public WiFi.
	EffectMarkWifiAttempted
	// record that the player paid cash instead.
	EffectMarkCashPayment
)

// Rule is one row of the transition table.
type Rule struct {
	Next     StateID
	Effects  []Effect
	Terminal bool // session completes; Next is ignored
}

// PromptSpec describes what to present for a state. The engine hands
// it to the rendering layer untouched.
type PromptSpec struct {
	Speaker string   // who is talking, or "" for system overlays
	Text    string   // prompt body
	Options []string // visible choice captions, if any
	Hint    string   // key hint line
}

// Table is one complete interaction script.
type Table struct {
	Start   StateID
	Keys    map[StateID]map[input.Key]Intent
	Rules   map[StateID]map[Intent]Rule
	Prompts map[StateID]PromptSpec
}

// Validate checks the table for dangling references so that broken
// content fails at load time, not in the middle of play.
func (t *Table) Validate() error {
	if t.Start == "" {
		return fmt.Errorf("flow: table has no start state")
	}
	if _, ok := t.Rules[t.Start]; !ok {
		return fmt.Errorf("flow: start state %q has no rules", t.Start)
	}
	for state, rules := range t.Rules {
		for intent, rule := range rules {
			if rule.Terminal {
				continue
			}
			if _, ok := t.Rules[rule.Next]; !ok {
				return fmt.Errorf("flow: %q + %v leads to undefined state %q",
					state, intent, rule.Next)
			}
		}
	}
	for state, keys := range t.Keys {
		if _, ok := t.Rules[state]; !ok {
			return fmt.Errorf("flow: key map for undefined state %q", state)
		}
		for key, intent := range keys {
			if _, ok := t.Rules[state][intent]; !ok {
				return fmt.Errorf("flow: state %q maps key %v to unanswered intent %v",
					state, key, intent)
			}
		}
	}
	return nil
}
