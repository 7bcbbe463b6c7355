package width

import "testing"

func TestStringWidth(t *testing.T) {
	for _, test := range []struct {
		text   string
		expect int
	}{
		{"", 0},
		{"cafe", 4},
		{"カフェ", 6},
	} {
		if w := StringWidth(test.text); w != test.expect {
			t.Errorf("StringWidth(%q) = %d, expect %d", test.text, w, test.expect)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ok", 6); got != "  ok  " {
		t.Errorf("Center() = %q, expect %q", got, "  ok  ")
	}
	if got := Center("too long", 4); got != "too long" {
		t.Errorf("Center() must keep wide text unchanged, got %q", got)
	}
}
