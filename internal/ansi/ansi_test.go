package ansi

import "testing"

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{Red + Bold + "error: " + Reset + "bad", "error: bad"},
		{"\033[1;36mx\033[0m", "x"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !Disabled() {
		t.Error("Disabled() = false with NO_COLOR set")
	}
}
