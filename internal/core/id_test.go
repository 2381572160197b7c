package core

import (
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	date := NewDate(2026, 1, 26)
	now := time.Date(2026, 1, 27, 10, 23, 45, 0, time.UTC)
	got := GenerateID(date, now)
	want := "EXP-20260126-102345"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGenerateIDIsDeterministic(t *testing.T) {
	date := NewDate(2026, 1, 26)
	now := time.Date(2026, 1, 26, 9, 0, 0, 0, time.UTC)
	if GenerateID(date, now) != GenerateID(date, now) {
		t.Fatal("same inputs must produce the same ID")
	}
}

func TestDisambiguateID(t *testing.T) {
	base := "EXP-20260126-102345"
	cases := []struct {
		seq  int
		want string
	}{
		{1, base},
		{2, base + "-2"},
		{3, base + "-3"},
		{17, base + "-17"},
	}
	for _, tc := range cases {
		if got := DisambiguateID(base, tc.seq); got != tc.want {
			t.Fatalf("seq %d: expected %q, got %q", tc.seq, tc.want, got)
		}
	}
}
