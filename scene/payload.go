package scene

// Payload carries the result of the cafe interaction back to the map
// scene. It is the only channel for that hand-over; scenes never read
// each other's locals.
type Payload struct {
	FromCafe      bool
	WifiAttempted bool
	CashPayment   bool
}

// payloadBox stores at most one pending payload on the scene holder.
// Take clears it, so a payload is consumed exactly once and a later
// map entry never sees stale data.
type payloadBox struct {
	payload Payload
	pending bool
}

func (b *payloadBox) Set(p Payload) {
	b.payload = p
	b.pending = true
}

func (b *payloadBox) Take() (Payload, bool) {
	if !b.pending {
		return Payload{}, false
	}
	p := b.payload
	b.payload = Payload{}
	b.pending = false
	return p, true
}
