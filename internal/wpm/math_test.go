package wpm

import "testing"

func TestPerMinute(t *testing.T) {
	cases := []struct {
		name    string
		words   int
		seconds float64
		want    float64
	}{
		{"one minute", 150, 60, 150},
		{"two minutes", 300, 120, 150},
		{"half minute", 80, 30, 160},
		{"zero duration", 500, 0, 0},
		{"zero words", 0, 60, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PerMinute(tc.words, tc.seconds); got != tc.want {
				t.Fatalf("PerMinute(%d, %v) = %v, want %v", tc.words, tc.seconds, got, tc.want)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	if got := CountWords("  the quick\nbrown   fox "); got != 4 {
		t.Fatalf("expected 4 words, got %d", got)
	}
	if got := CountWords(""); got != 0 {
		t.Fatalf("expected 0 words for empty text, got %d", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round1(149.96); got != 150.0 {
		t.Fatalf("Round1(149.96) = %v", got)
	}
	if got := Round2(62.039); got != 62.04 {
		t.Fatalf("Round2(62.039) = %v", got)
	}
}
