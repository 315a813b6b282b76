package handlers

import (
	"testing"

	"vitrine/pkg/hours"
)

func TestCanonicalDay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"monday", "monday", true},
		{"Monday", "monday", true},
		{"  SUNDAY  ", "sunday", true},
		{"holiday", "", false},
		{"mon", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := canonicalDay(tt.input)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("canonicalDay(%q) = (%q, %v), expected (%q, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestDraftWeekly(t *testing.T) {
	draft := map[string]hours.DaySchedule{
		"Monday": {Open: "09:00", Close: "17:00", IsOpen: true},
		"friday": {Open: "09:00", Close: "15:00", IsOpen: true},
	}

	weekly, err := draftWeekly(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weekly) != 7 {
		t.Fatalf("expected all 7 days, got %d", len(weekly))
	}
	if !weekly["monday"].IsOpen || weekly["monday"].Open != "09:00" {
		t.Errorf("monday = %+v", weekly["monday"])
	}
	if weekly["tuesday"].IsOpen {
		t.Error("unmentioned day should come back closed")
	}
}

func TestDraftWeeklyUnknownDay(t *testing.T) {
	draft := map[string]hours.DaySchedule{
		"funday": {Open: "09:00", Close: "17:00", IsOpen: true},
	}

	if _, err := draftWeekly(draft); err == nil {
		t.Fatal("expected an error for an unknown day name")
	}
}
