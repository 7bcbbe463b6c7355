package world

// Hotspot is a circular proximity trigger around an interactive
// object, used by the home puzzle room.
type Hotspot struct {
	ID     string
	Pos    Point
	Radius float64
}

// HotspotTracker fires each hotspot once per continuous occupancy of
// its capture radius: crossing in fires, staying in does not, leaving
// and re-entering re-arms.
type HotspotTracker struct {
	spots  []Hotspot
	inside map[string]bool
}

func NewHotspotTracker(spots []Hotspot) *HotspotTracker {
	return &HotspotTracker{
		spots:  spots,
		inside: map[string]bool{},
	}
}

// Update returns the IDs of hotspots newly entered at pos, in
// declaration order.
func (h *HotspotTracker) Update(pos Point) []string {
	var fired []string
	for _, s := range h.spots {
		in := Dist(pos, s.Pos) < s.Radius
		if in && !h.inside[s.ID] {
			fired = append(fired, s.ID)
		}
		h.inside[s.ID] = in
	}
	return fired
}
