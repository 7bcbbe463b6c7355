package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/securecodex/cityquest/flow"
	"github.com/securecodex/cityquest/uiadapter/event/input"
)

func TestDefaultCafeDialogueValid(t *testing.T) {
	table := Default().CafeDialogue()
	if err := table.Validate(); err != nil {
		t.Fatalf("built-in cafe table invalid: %v", err)
	}
	if table.Start != CafeStateWelcome {
		t.Fatalf("start = %q", table.Start)
	}
}

// walk the risky path through the real cafe table: five continues to
// the phone, connect at the warning, then exit from the risk alert.
func TestCafeRiskyWalkthrough(t *testing.T) {
	s := flow.NewSession(Default().CafeDialogue())

	wantStates := []flow.StateID{
		CafeStateOrder, CafeStateConfirm, CafeStateAskPrice,
		CafeStatePrice, CafeStatePaymentFailed, CafeStateWifiWarning,
		CafeStateWifiRisks,
	}
	for i, want := range wantStates {
		res := s.HandleKey(input.KeyEnter)
		if res.Kind != flow.ResultRender || res.State != want {
			t.Fatalf("enter #%d: got (%v, %q), want render %q", i+1, res.Kind, res.State, want)
		}
	}

	res := s.HandleKey(input.KeyEnter)
	if res.Kind != flow.ResultSwitch {
		t.Fatalf("exit from risk alert must complete the session, got %+v", res)
	}
	if out := res.Outcome; !out.WifiAttempted || out.CashPayment {
		t.Fatalf("risky path outcome = %+v", out)
	}
}

// same flow but choosing cash at the warning.
func TestCafeSafeWalkthrough(t *testing.T) {
	s := flow.NewSession(Default().CafeDialogue())

	for i := 0; i < 6; i++ {
		s.HandleKey(input.KeyEnter)
	}
	if s.Current() != CafeStateWifiWarning {
		t.Fatalf("state = %q before choice, want wifi warning", s.Current())
	}

	// ESC here means the safe path, not leaving the cafe.
	res := s.HandleKey(input.KeyEscape)
	if res.Kind != flow.ResultRender || res.State != CafeStateCashPayment {
		t.Fatalf("escape at warning must pay cash, got %+v", res)
	}

	s.HandleKey(input.KeyEnter) // -> farewell
	res = s.HandleKey(input.KeyEnter)
	if res.Kind != flow.ResultSwitch {
		t.Fatalf("farewell continue must complete, got %+v", res)
	}
	if out := res.Outcome; out.WifiAttempted || !out.CashPayment {
		t.Fatalf("safe path outcome = %+v", out)
	}
}

// ESC before the phone leaves the cafe with no flags set.
func TestCafeEarlyExit(t *testing.T) {
	s := flow.NewSession(Default().CafeDialogue())
	s.HandleKey(input.KeyEnter)
	res := s.HandleKey(input.KeyEscape)
	if res.Kind != flow.ResultSwitch {
		t.Fatalf("escape outside phone must leave, got %+v", res)
	}
	if out := res.Outcome; out.WifiAttempted || out.CashPayment {
		t.Fatalf("early exit outcome = %+v", out)
	}
}

func TestLoadLuaOverride(t *testing.T) {
	pack, err := LoadLuaString(`
cafe = { welcome = "Hi there!", price = "Free today." }
home = { password = "hunter2", otp = "0000" }
`)
	if err != nil {
		t.Fatal(err)
	}
	if pack.Cafe.Welcome != "Hi there!" {
		t.Errorf("welcome = %q", pack.Cafe.Welcome)
	}
	if pack.Cafe.Price != "Free today." {
		t.Errorf("price = %q", pack.Cafe.Price)
	}
	if pack.Home.Password != "hunter2" || pack.Home.OTP != "0000" {
		t.Errorf("credentials = %q / %q", pack.Home.Password, pack.Home.OTP)
	}
	// untouched fields keep the defaults.
	if pack.Cafe.Order != Default().Cafe.Order {
		t.Errorf("order overridden unexpectedly: %q", pack.Cafe.Order)
	}
	if pack.Home.IDNumber != Default().Home.IDNumber {
		t.Errorf("id number overridden unexpectedly: %q", pack.Home.IDNumber)
	}
}

func TestLoadLuaRejectsEmptyCredential(t *testing.T) {
	if _, err := LoadLuaString(`home = { password = "" }`); err == nil {
		t.Fatal("empty credential must be rejected")
	}
}

func TestLoadLuaSyntaxError(t *testing.T) {
	if _, err := LoadLuaString(`cafe = {`); err == nil {
		t.Fatal("syntax error must be reported")
	}
}

func TestLoadLuaFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.lua")
	script := []byte(`cafe = { welcome = "from file" }` + "\n")
	if err := os.WriteFile(path, script, 0644); err != nil {
		t.Fatal(err)
	}

	pack, err := LoadLuaFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if pack.Cafe.Welcome != "from file" {
		t.Errorf("welcome = %q", pack.Cafe.Welcome)
	}
}
