// package world implements the spatial side of the game: the open
// map geometry, player movement, rectangular location zones with
// edge-triggered entry, and circular proximity hotspots used by the
// home puzzle.
package world

// Location identifies an enterable building on the map.
type Location string

const (
	LocationNone Location = ""
	LocationHome Location = "home"
	LocationCafe Location = "cafe"
	LocationBank Location = "bank"
)

// Zone binds a trigger rectangle to a location. Zones are created at
// scene setup and immutable afterwards; entry state lives in Tracker.
type Zone struct {
	Loc    Location
	Bounds Rect
}

// Building footprints and trigger insets of the default map.
// The trigger rectangle sits inside the drawn building so the player
// has to walk into it, not just brush the edge.
const (
	zoneInsetX   = 50
	zoneInsetY   = 100
	zoneShrink   = 100
	homeSize     = 300
	cafeSize     = 300
	bankSize     = 250
	homeX, homeY = 425, 300
	cafeX, cafeY = 850, 50
	bankX, bankY = 1150, 800
)

func insetZone(loc Location, x, y, size float64) Zone {
	return Zone{
		Loc: loc,
		Bounds: Rect{
			X: x + zoneInsetX,
			Y: y + zoneInsetY,
			W: size - zoneShrink,
			H: size - zoneShrink,
		},
	}
}

// DefaultZones returns the three building zones of the map scene.
func DefaultZones() []Zone {
	return []Zone{
		insetZone(LocationHome, homeX, homeY, homeSize),
		insetZone(LocationCafe, cafeX, cafeY, cafeSize),
		insetZone(LocationBank, bankX, bankY, bankSize),
	}
}
