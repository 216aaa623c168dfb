package domain

import (
	"testing"
	"time"
)

func TestNewAppSession(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)

	s := NewAppSession("u1", "Google Chrome", start, end)

	if s.DurationMs != 90_000 {
		t.Errorf("DurationMs = %d, want 90000", s.DurationMs)
	}
	if s.Category != TierNeutral {
		t.Errorf("Category = %v, want %v", s.Category, TierNeutral)
	}
	if s.EndTime.Before(s.StartTime) {
		t.Error("EndTime before StartTime")
	}
}

func TestNewWebSession(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	s := NewWebSession("u1", "youtube.com", start, start.Add(30*time.Second))

	if s.Category != TierUnproductive {
		t.Errorf("Category = %v, want %v", s.Category, TierUnproductive)
	}
	if s.DurationMs != 30_000 {
		t.Errorf("DurationMs = %d, want 30000", s.DurationMs)
	}
}
