// package content holds the declarative script data consumed by the
// interaction engine: dialogue texts, step tables, puzzle prompts and
// the fixed credentials of the home puzzle. The built-in pack mirrors
// the shipped campaign; an optional Lua file can override any text or
// credential, and a Reloader can hot-swap the pack between sessions.
package content

import (
	"github.com/securecodex/cityquest/world"
)

// Pack is one complete content set. Packs are immutable after load;
// hot reload replaces the whole pack, never patches a live one.
type Pack struct {
	Cafe CafeScript
	Home HomeScript
}

// CafeScript is the text of the cafe dialogue and its phone sub-flow.
type CafeScript struct {
	Welcome  string
	Order    string
	Confirm  string
	AskPrice string
	Price    string

	PaymentFailed string
	WifiWarning   string
	WifiRisks     string
	CashSuccess   string

	Farewell string
}

// HomeScript is the content of the home puzzle room: object texts and
// the two independently fixed correct credentials. Validation is
// exact string equality; there is no fuzzy matching, attempt counting
// or lockout.
type HomeScript struct {
	IDNumber string // printed on the ID card, also the phone PIN
	Password string // correct password for the mail account
	OTP      string // one-time code revealed by the unlocked phone

	Account  string // account name shown in the password prompt
	NoteText string // personal information hinting at the password
}

// Hotspot IDs of the home puzzle room.
const (
	HotspotComputer = "computer"
	HotspotPhone    = "phone"
	HotspotNote     = "note"
	HotspotID       = "id"
)

// HomeHotspots returns the proximity triggers of the puzzle room.
// The computer has a wider capture radius than the pickup objects.
func HomeHotspots() []world.Hotspot {
	return []world.Hotspot{
		{ID: HotspotComputer, Pos: world.Point{X: 50, Y: 268}, Radius: 150},
		{ID: HotspotPhone, Pos: world.Point{X: 450, Y: 165}, Radius: 50},
		{ID: HotspotNote, Pos: world.Point{X: 548, Y: 520}, Radius: 50},
		{ID: HotspotID, Pos: world.Point{X: 575, Y: 350}, Radius: 50},
	}
}

// Default returns the built-in content pack.
func Default() *Pack {
	return &Pack{
		Cafe: CafeScript{
			Welcome:  "Welcome to our Cafe! What can I get you today?",
			Order:    "I would like to have some coffee.",
			Confirm:  "Sure! One coffee coming right up!",
			AskPrice: "How much do I need to pay?",
			Price:    "That will be 50 Rs, please.",

			PaymentFailed: "Payment Failed\nNo Internet Connection",
			WifiWarning: "WARNING: This is an unsecured public WiFi.\n" +
				"Your data may be at risk!\nDo you want to connect anyway?",
			WifiRisks: "SECURITY RISK ALERT!\n\n" +
				"Public WiFi networks can expose you to:\n" +
				"- Identity theft\n- Banking information theft\n" +
				"- Data interception\n- Malware infection",
			CashSuccess: "Smart choice! You paid with cash.\n" +
				"Your personal information is safe.\n+100 SECURITY POINTS",

			Farewell: "Thank you for visiting our cafe! Come again!",
		},
		Home: HomeScript{
			IDNumber: "DSI2024001",
			Password: "20/06/2004",
			OTP:      "4528",
			Account:  "testmail@dsi.xyz",
			NoteText: "Personal Information:\nFather: Keshav Karthik CN\n" +
				"Mother: Hemavathi\nDOB: 20/06/2004",
		},
	}
}

// Provider hands the current content pack to scenes. Scenes fetch a
// pack once per session so a reload never swaps content mid-session.
type Provider interface {
	Current() *Pack
}

// Static is a Provider serving one fixed pack.
type Static struct {
	Pack *Pack
}

func (s Static) Current() *Pack { return s.Pack }
