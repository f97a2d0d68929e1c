package cmd

import "testing"

func TestTruncateByRune(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"8 + 5", 12, "8 + 5"},
		{"what is 8 plus 5", 12, "what is 8 pl"},
		{"8 + 5 = ?", 0, ""},
		{"¿cuánto es 8 más 5?", 12, "¿cuánto es 8"},
		{"８＋５はいくつ", 4, "８＋５は"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
