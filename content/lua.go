package content

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LoadLuaFile builds a pack from a Lua content script laid over the
// built-in defaults. The script runs sandboxed with no libraries
// opened; it can only assign the `cafe` and `home` global tables.
//
//	cafe = { welcome = "...", price = "..." }
//	home = { password = "...", otp = "..." }
func LoadLuaFile(path string) (*Pack, error) {
	L := newLuaState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("content: running %s: %w", path, err)
	}
	return packFromLua(L)
}

// LoadLuaString is LoadLuaFile for in-memory scripts.
func LoadLuaString(src string) (*Pack, error) {
	L := newLuaState()
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return packFromLua(L)
}

func newLuaState() *lua.LState {
	// no opened libraries: content scripts are data, not programs,
	// and must not reach the file system or OS.
	return lua.NewState(lua.Options{SkipOpenLibs: true})
}

func packFromLua(L *lua.LState) (*Pack, error) {
	p := Default()

	if tbl, ok := L.GetGlobal("cafe").(*lua.LTable); ok {
		for _, field := range []struct {
			key string
			dst *string
		}{
			{"welcome", &p.Cafe.Welcome},
			{"order", &p.Cafe.Order},
			{"confirm", &p.Cafe.Confirm},
			{"ask_price", &p.Cafe.AskPrice},
			{"price", &p.Cafe.Price},
			{"payment_failed", &p.Cafe.PaymentFailed},
			{"wifi_warning", &p.Cafe.WifiWarning},
			{"wifi_risks", &p.Cafe.WifiRisks},
			{"cash_success", &p.Cafe.CashSuccess},
			{"farewell", &p.Cafe.Farewell},
		} {
			setString(tbl, field.key, field.dst)
		}
	}

	if tbl, ok := L.GetGlobal("home").(*lua.LTable); ok {
		for _, field := range []struct {
			key string
			dst *string
		}{
			{"id_number", &p.Home.IDNumber},
			{"password", &p.Home.Password},
			{"otp", &p.Home.OTP},
			{"account", &p.Home.Account},
			{"note_text", &p.Home.NoteText},
		} {
			setString(tbl, field.key, field.dst)
		}
	}

	// broken content must fail at load time, never during play.
	if err := p.CafeDialogue().Validate(); err != nil {
		return nil, err
	}
	if p.Home.Password == "" || p.Home.OTP == "" || p.Home.IDNumber == "" {
		return nil, fmt.Errorf("content: home credentials must not be empty")
	}
	return p, nil
}

func setString(tbl *lua.LTable, key string, dst *string) {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		*dst = string(s)
	}
}
