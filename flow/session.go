package flow

import (
	"github.com/securecodex/cityquest/uiadapter/event/input"
)

// Outcome is what one finished session hands back to the scene layer.
type Outcome struct {
	WifiAttempted bool
	CashPayment   bool
}

type ResultKind int8

const (
	// signal consumed without effect: unknown key, unknown state, or
	// a session that already completed. Never an error.
	ResultNoop ResultKind = iota
	// new prompt to present.
	ResultRender
	// session complete; the scene should request a scene switch.
	// Emitted at most once per session.
	ResultSwitch
)

// StepResult is the tagged union returned by every advance.
type StepResult struct {
	Kind    ResultKind
	State   StateID
	Prompt  PromptSpec // valid for ResultRender
	Outcome Outcome    // valid for ResultSwitch
}

// Session is one run of an interaction script. Created on zone entry,
// destroyed on scene exit or completion. Not reusable after the
// terminal result.
type Session struct {
	table   *Table
	current StateID
	done    bool
	outcome Outcome
}

func NewSession(t *Table) *Session {
	return &Session{table: t, current: t.Start}
}

// Current returns the active state.
func (s *Session) Current() StateID { return s.current }

// Done reports whether the session already produced its terminal result.
func (s *Session) Done() bool { return s.done }

// Outcome returns the decisions accumulated so far.
func (s *Session) Outcome() Outcome { return s.outcome }

// Prompt returns the presentation of the current state, used for the
// initial render before any input arrives.
func (s *Session) Prompt() PromptSpec {
	return s.table.Prompts[s.current]
}

// HandleKey resolves the key through the current state's key map and
// advances. Keys without a mapping in the current state are no-ops.
func (s *Session) HandleKey(k input.Key) StepResult {
	if s.done {
		return StepResult{Kind: ResultNoop, State: s.current}
	}
	intent, ok := s.table.Keys[s.current][k]
	if !ok {
		return StepResult{Kind: ResultNoop, State: s.current}
	}
	return s.Advance(intent)
}

// Advance consumes one intent and moves the session along its table.
// After the terminal result every further advance is a no-op, so
// rapid repeated input cannot fire a second scene switch.
func (s *Session) Advance(intent Intent) StepResult {
	if s.done {
		return StepResult{Kind: ResultNoop, State: s.current}
	}
	rule, ok := s.table.Rules[s.current][intent]
	if !ok {
		return StepResult{Kind: ResultNoop, State: s.current}
	}

	for _, effect := range rule.Effects {
		switch effect {
		case EffectMarkWifiAttempted:
			s.outcome.WifiAttempted = true
		case EffectMarkCashPayment:
			s.outcome.CashPayment = true
		}
	}

	if rule.Terminal {
		s.done = true
		return StepResult{Kind: ResultSwitch, State: s.current, Outcome: s.outcome}
	}

	s.current = rule.Next
	return StepResult{
		Kind:   ResultRender,
		State:  s.current,
		Prompt: s.table.Prompts[s.current],
	}
}
