package helpers

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(555) 010-0000", "5550100000"},
		{"555.010.0000", "5550100000"},
		{"555 010 0000", "5550100000"},
		{"15550100000", "15550100000"},
		{"+1 555-010-0000", "15550100000"},
		{"abc", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"5550100000", "15550100000"}
	for _, p := range valid {
		if !ValidPhone(p) {
			t.Errorf("ValidPhone(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "555", "555010000", "155501000000", "555-010-0000"}
	for _, p := range invalid {
		if ValidPhone(p) {
			t.Errorf("ValidPhone(%q) = true, want false", p)
		}
	}
}
