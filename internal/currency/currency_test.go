package currency

import "testing"

func TestSupported(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"USD", true},
		{"EUR", true},
		{"INR", true},
		{"usd", true},   // lowercase accepted
		{" eur ", true}, // surrounding spaces trimmed
		{"US", false},   // too short
		{"USDA", false}, // too long
		{"XYZ", false},  // not in the set
		{"", false},     // empty
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			if got := Supported(tc.code); got != tc.want {
				t.Errorf("Supported(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  usd "); got != "USD" {
		t.Errorf("Normalize(%q) = %q, want %q", "  usd ", got, "USD")
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) != len(supported) {
		t.Fatalf("Codes() returned %d codes, want %d", len(codes), len(supported))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("Codes() not sorted: %q before %q", codes[i-1], codes[i])
		}
	}
	for _, code := range codes {
		if !Supported(code) {
			t.Errorf("Codes() returned unsupported code %q", code)
		}
	}
}
