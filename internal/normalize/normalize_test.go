package normalize

import "testing"

func TestNormalize_Canonicalization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  CORE3  ", "CORE3"},
		{"RA2_SELECT", "RA2-SELECT"},
		{"RA2/SELECT", "RA2-SELECT"},
		{"RA2--SELECT", "RA2-SELECT"},
		{"RA2---SELECT", "RA2-SELECT"},
		{"(CORE3)", "CORE3"},
		{"CORE3.", "CORE3"},
		{"\"CORE3\",", "CORE3"},
		{"DM   NVX", "DM NVX"},
		{"dm-nvx-350", "dm-nvx-350"},
		{"", ""},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  CORE3  ", "RA2_SELECT", "RA2--SELECT", "(AN-310-SW-R-8)",
		"dm_nvx/350", "WB-800VPS-IPVM-12", "plain text token",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestKey_Uppercase(t *testing.T) {
	if got := Key("ra2_select"); got != "RA2-SELECT" {
		t.Errorf("Key(ra2_select) = %q, want RA2-SELECT", got)
	}
	if Key("Core3") != Key("CORE3") {
		t.Error("expected Core3 and CORE3 to share a key")
	}
}
