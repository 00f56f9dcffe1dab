package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerSequencing(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewPhaseStartEvent("reservation"))
	l.Log(NewReserveEvent("White Soldiers", "Veteran Swordsmith", 10.0))
	l.Log(NewPhaseEndEvent("reservation", 1))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d, want %d", i, e.Seq, i+1)
		}
	}
	if last := l.LastEvent(); last.Type != EventPhaseEnd {
		t.Errorf("last event type = %s, want %s", last.Type, EventPhaseEnd)
	}
}

func TestMemoryLoggerFilters(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewReserveEvent("White Soldiers", "Veteran Swordsmith", 10.0))
	l.Log(NewAssignEvent("Blue Flying", "Cloud Drake", 2.5))
	l.Log(NewAssignEvent("White Soldiers", "Loyal Squire", 1.5))

	if got := l.EventsOfType(EventAssign); len(got) != 2 {
		t.Errorf("got %d assign events, want 2", len(got))
	}
	soldiers := l.EventsForTheme("White Soldiers")
	if len(soldiers) != 2 {
		t.Fatalf("got %d soldier events, want 2", len(soldiers))
	}
	if soldiers[0].Type != EventReserve || soldiers[1].Type != EventAssign {
		t.Errorf("soldier events out of order: %v, %v", soldiers[0].Type, soldiers[1].Type)
	}
}

func TestLastEventEmpty(t *testing.T) {
	l := NewMemoryLogger()
	if got := l.LastEvent(); got.Seq != 0 {
		t.Errorf("empty logger LastEvent = %+v, want zero event", got)
	}
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewAssignEvent("White Soldiers", "Loyal Squire", 1.5))
	l.Log(NewShortfallEvent("Blue Flying", 11, 13))

	out := sb.String()
	if !strings.Contains(out, "White Soldiers takes Loyal Squire (1.5 pts)") {
		t.Errorf("missing assign line in output:\n%s", out)
	}
	if !strings.Contains(out, "Blue Flying under quota: 11/13") {
		t.Errorf("missing shortfall line in output:\n%s", out)
	}
	if got := len(l.Events()); got != 2 {
		t.Errorf("text logger kept %d events, want 2", got)
	}
}

func TestEventTypeStrings(t *testing.T) {
	seen := map[string]bool{}
	types := []EventType{
		EventPhaseStart, EventPhaseEnd, EventReserve, EventColorAssign,
		EventAssign, EventComplete, EventSkip, EventRemove, EventBackfill,
		EventShortfall, EventViolation, EventRepairPass, EventUnresolved,
		EventBuildDone,
	}
	for _, et := range types {
		s := et.String()
		if s == "" {
			t.Errorf("event type %d has empty name", int(et))
		}
		if seen[s] {
			t.Errorf("duplicate event type name %q", s)
		}
		seen[s] = true
	}
}

func TestFormatAll(t *testing.T) {
	events := []BuildEvent{
		NewPhaseStartEvent("general"),
		NewAssignEvent("Red Burn", "Spark Volley", 3.0),
	}
	out := FormatAll(events)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "general") {
		t.Errorf("line not phase-prefixed: %q", lines[1])
	}
}
