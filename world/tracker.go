package world

// ExitMargin is the horizontal offset from a zone's far corner at
// which the player reappears after leaving a building. Exiting always
// pops the player out beside the building instead of restoring the
// pre-entry position.
const ExitMargin = 80

type TriggerKind int8

const (
	TriggerNone TriggerKind = iota
	// player newly entered an open location.
	TriggerEnter
	// player newly stepped on a closed location; only a transient
	// warning should be shown, the location is not entered.
	TriggerClosed
)

// Trigger is the result of one tracker update.
type Trigger struct {
	Kind TriggerKind
	Loc  Location
}

// Tracker owns the zone entry state of one map scene run.
//
// Entry is edge triggered: the first update that sees the player
// inside a zone fires, later updates inside the same zone do not.
// At most one location is entered at a time; while entered, all other
// zone triggers are suppressed. Exit is an explicit command (Exit),
// not a spatial event, because the player is hidden and frozen while
// inside a building.
type Tracker struct {
	zones   []Zone
	entered Location
	closed  map[Location]bool
	inside  map[Location]bool // continuous occupancy, for re-arming
}

func NewTracker(zones []Zone) *Tracker {
	return &Tracker{
		zones:  zones,
		closed: map[Location]bool{},
		inside: map[Location]bool{},
	}
}

// Close marks a location permanently inaccessible for this run.
// Stepping on its zone then yields TriggerClosed once per continuous
// occupancy.
func (t *Tracker) Close(loc Location) {
	t.closed[loc] = true
}

func (t *Tracker) Closed(loc Location) bool {
	return t.closed[loc]
}

// Entered returns the currently entered location, or LocationNone.
func (t *Tracker) Entered() Location {
	return t.entered
}

// Update evaluates the player position against all zones and returns
// at most one trigger. While a location is entered the tracker is
// inert: the player cannot move anyway.
func (t *Tracker) Update(pos Point) Trigger {
	if t.entered != LocationNone {
		return Trigger{Kind: TriggerNone}
	}

	fired := Trigger{Kind: TriggerNone}
	for _, z := range t.zones {
		in := z.Bounds.Contains(pos)
		wasIn := t.inside[z.Loc]
		t.inside[z.Loc] = in
		if !in || wasIn || fired.Kind != TriggerNone {
			continue
		}
		if t.closed[z.Loc] {
			fired = Trigger{Kind: TriggerClosed, Loc: z.Loc}
			continue
		}
		t.entered = z.Loc
		fired = Trigger{Kind: TriggerEnter, Loc: z.Loc}
	}
	return fired
}

// Exit leaves the entered location and returns the deterministic
// pop-out position beside its zone. Calling Exit while nothing is
// entered is a no-op and reports ok=false.
func (t *Tracker) Exit() (pos Point, loc Location, ok bool) {
	if t.entered == LocationNone {
		return Point{}, LocationNone, false
	}
	loc = t.entered
	t.entered = LocationNone
	pos, ok = ExitPoint(t.zones, loc)
	if !ok {
		return Point{}, loc, false
	}
	// popping out beside the building leaves the zone rectangle,
	// so the occupancy latch re-arms immediately.
	t.inside[loc] = false
	return pos, loc, true
}

// ExitPoint returns the pop-out position beside the named zone,
// the same spot Exit uses. ok is false for an unknown location.
func ExitPoint(zones []Zone, loc Location) (Point, bool) {
	for _, z := range zones {
		if z.Loc != loc {
			continue
		}
		return Point{
			X: z.Bounds.X + z.Bounds.W + ExitMargin,
			Y: z.Bounds.Y + z.Bounds.H,
		}, true
	}
	return Point{}, false
}
