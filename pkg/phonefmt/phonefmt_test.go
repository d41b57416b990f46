package phonefmt

import "testing"

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		Phone  string
		Region string
		E164   string
	}{
		{"+1 650 253 0000", "US", "+16502530000"},
		{"16502530000", "US", "+16502530000"},
		{"650-253-0000", "US", "+16502530000"},
		{"+44 20 7031 3000", "GB", "+442070313000"},
		{"442070313000", "GB", "+442070313000"},
		{"+44 20 7031 3000", "", "+442070313000"},
	} {
		if x := Format(tc.Phone, tc.Region); x.E164 != tc.E164 {
			t.Errorf("Format(%q, %q): expected %q, got %#v", tc.Phone, tc.Region, tc.E164, x)
		}
	}

	r := Format("+1 650 253 0000", "US")
	if !r.Valid {
		t.Errorf("expected valid number")
	}
	if r.Region != "US" {
		t.Errorf("expected US region, got %q", r.Region)
	}
	if r.National != "(650) 253-0000" {
		t.Errorf("unexpected national format %q", r.National)
	}
	if r.International != "+1 650-253-0000" {
		t.Errorf("unexpected international format %q", r.International)
	}
}

func TestFormatInvalid(t *testing.T) {
	for _, phone := range []string{"", "+", "abc", "12"} {
		if x := Format(phone, "US"); x.Valid {
			t.Errorf("Format(%q): expected invalid, got %#v", phone, x)
		}
	}
	if x := Format("", "US"); x != (Result{}) {
		t.Errorf("expected empty result for empty input")
	}
}
