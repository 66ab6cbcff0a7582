package security

import "testing"

func TestSanitizeLevelName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "Builder", "Builder"},
		{"surrounding whitespace", "  Builder  ", "Builder"},
		{"bold markup", "<b>Builder</b>", "Builder"},
		{"nested markup", "<div><i>Mentor</i></div>", "Mentor"},
		{"only markup", "<b></b>", ""},
		{"script tag", `<script>alert("x")</script>Icon`, "Icon"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeLevelName(tt.input); got != tt.want {
				t.Errorf("SanitizeLevelName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"removes null bytes", "he\x00llo", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeString(tt.input); got != tt.want {
				t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeString_LimitsLength(t *testing.T) {
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'a'
	}

	got := SanitizeString(string(long))
	if len(got) != 1000 {
		t.Errorf("len = %d, want 1000", len(got))
	}
}
