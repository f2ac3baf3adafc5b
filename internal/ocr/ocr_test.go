package ocr

import "testing"

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name      string
		extracted string
		expected  string
		want      float64
		tolerance float64
	}{
		{"identical", "STOP", "stop", 1, 0},
		{"whitespace normalized", "  hello   world ", "hello world", 1, 0},
		{"both empty", "", "", 1, 0},
		{"completely different length one", "a", "z", 0, 0},
		{"partial match", "kitten", "sitting", 1 - 3.0/7.0, 0.001},
		{"nothing extracted", "", "expected text", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchScore(tt.extracted, tt.expected)
			if diff := got - tt.want; diff > tt.tolerance || diff < -tt.tolerance {
				t.Errorf("MatchScore(%q, %q) = %v, want %v", tt.extracted, tt.expected, got, tt.want)
			}
		})
	}
}

func TestMatchScore_Bounds(t *testing.T) {
	score := MatchScore("abcdef", "uvwxyz")
	if score < 0 || score > 1 {
		t.Errorf("Score out of [0,1]: %v", score)
	}
}
