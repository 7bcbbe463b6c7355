package state

// Award flags used by the built-in scenes. Each flag guards its
// point grant for one whole play-through.
const (
	FlagHomeCompleted = "home_completed"
	FlagCafeCash      = "cafe_cash_payment"
)

// ScoreLedger is a monotonic non-negative score with idempotency
// guards. Award applies a point delta at most once per flag; repeat
// calls with the same flag are no-ops until the next restart.
type ScoreLedger struct {
	Points int             `codec:"points"`
	Flags  map[string]bool `codec:"flags"`
}

func newScoreLedger() ScoreLedger {
	return ScoreLedger{Flags: map[string]bool{}}
}

// Award adds amount once per distinct flag. It reports whether the
// points were actually granted.
func (l *ScoreLedger) Award(amount int, flag string) bool {
	if amount < 0 {
		return false
	}
	if l.Flags == nil {
		l.Flags = map[string]bool{}
	}
	if l.Flags[flag] {
		return false
	}
	l.Flags[flag] = true
	l.Points += amount
	return true
}

// Awarded reports whether the flag has been granted this play-through.
func (l *ScoreLedger) Awarded(flag string) bool {
	return l.Flags[flag]
}
