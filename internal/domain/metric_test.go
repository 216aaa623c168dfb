package domain

import "testing"

func TestCalculateActivityLevel(t *testing.T) {
	tests := []struct {
		name     string
		keys     int
		clicks   int
		expected Level
	}{
		{"no input is inactive", 0, 0, LevelInactive},
		{"single keystroke is low", 1, 0, LevelLow},
		{"single click is low", 0, 1, LevelLow},
		{"just under low threshold", 29, 0, LevelLow},
		{"at low threshold", 30, 0, LevelMedium},
		{"clicks weigh double", 0, 15, LevelMedium},
		{"just under medium threshold", 99, 0, LevelMedium},
		{"at medium threshold", 100, 0, LevelHigh},
		{"heavy mixed input", 80, 40, LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateActivityLevel(tt.keys, tt.clicks); got != tt.expected {
				t.Errorf("CalculateActivityLevel(%d, %d) = %v, want %v",
					tt.keys, tt.clicks, got, tt.expected)
			}
		})
	}
}

func TestCalculateActivityLevel_Monotonic(t *testing.T) {
	rank := map[Level]int{
		LevelInactive: 0,
		LevelLow:      1,
		LevelMedium:   2,
		LevelHigh:     3,
	}

	for keys := 0; keys <= 120; keys += 10 {
		for clicks := 0; clicks <= 60; clicks += 5 {
			base := rank[CalculateActivityLevel(keys, clicks)]
			if rank[CalculateActivityLevel(keys+1, clicks)] < base {
				t.Fatalf("level decreased when keys grew at (%d, %d)", keys, clicks)
			}
			if rank[CalculateActivityLevel(keys, clicks+1)] < base {
				t.Fatalf("level decreased when clicks grew at (%d, %d)", keys, clicks)
			}
		}
	}
}
