package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging build events.
type EventLogger interface {
	Log(event BuildEvent)
	Events() []BuildEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []BuildEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event BuildEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []BuildEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []BuildEvent {
	var result []BuildEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// EventsForTheme returns all events attached to the given theme.
func (l *MemoryLogger) EventsForTheme(theme string) []BuildEvent {
	var result []BuildEvent
	for _, e := range l.events {
		if e.Theme == theme {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() BuildEvent {
	if len(l.events) == 0 {
		return BuildEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event BuildEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e BuildEvent) string {
	phase := e.Phase
	// Pad phase to 14 chars for alignment
	for len(phase) < 14 {
		phase += " "
	}
	return fmt.Sprintf("%s| %s", phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []BuildEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewPhaseStartEvent(phase string) BuildEvent {
	return BuildEvent{
		Phase:   phase,
		Type:    EventPhaseStart,
		Details: fmt.Sprintf("=== %s ===", phase),
	}
}

func NewPhaseEndEvent(phase string, assigned int) BuildEvent {
	return BuildEvent{
		Phase:   phase,
		Type:    EventPhaseEnd,
		Details: fmt.Sprintf("%s complete (%d cards assigned)", phase, assigned),
	}
}

func NewReserveEvent(theme, cardName string, score float64) BuildEvent {
	return BuildEvent{
		Phase:   "reservation",
		Type:    EventReserve,
		Theme:   theme,
		Card:    cardName,
		Score:   score,
		Details: fmt.Sprintf("%s reserves %s (%.1f pts)", theme, cardName, score),
	}
}

func NewColorAssignEvent(theme, cardName string, score float64) BuildEvent {
	return BuildEvent{
		Phase:   "color",
		Type:    EventColorAssign,
		Theme:   theme,
		Card:    cardName,
		Score:   score,
		Details: fmt.Sprintf("%s takes %s (%.1f pts)", theme, cardName, score),
	}
}

func NewAssignEvent(theme, cardName string, score float64) BuildEvent {
	return BuildEvent{
		Phase:   "general",
		Type:    EventAssign,
		Theme:   theme,
		Card:    cardName,
		Score:   score,
		Details: fmt.Sprintf("%s takes %s (%.1f pts)", theme, cardName, score),
	}
}

func NewCompleteEvent(theme, cardName string, score float64) BuildEvent {
	return BuildEvent{
		Phase:   "completion",
		Type:    EventComplete,
		Theme:   theme,
		Card:    cardName,
		Score:   score,
		Details: fmt.Sprintf("%s fills with %s (%.1f pts)", theme, cardName, score),
	}
}

func NewSkipEvent(phase, theme, cardName, reason string) BuildEvent {
	return BuildEvent{
		Phase:   phase,
		Type:    EventSkip,
		Theme:   theme,
		Card:    cardName,
		Details: fmt.Sprintf("%s skips %s (%s)", theme, cardName, reason),
	}
}

func NewRemoveEvent(theme, cardName, reason string) BuildEvent {
	return BuildEvent{
		Phase:   "repair",
		Type:    EventRemove,
		Theme:   theme,
		Card:    cardName,
		Details: fmt.Sprintf("%s returns %s (%s)", theme, cardName, reason),
	}
}

func NewBackfillEvent(theme, cardName string, score float64) BuildEvent {
	return BuildEvent{
		Phase:   "repair",
		Type:    EventBackfill,
		Theme:   theme,
		Card:    cardName,
		Score:   score,
		Details: fmt.Sprintf("%s backfills with %s (%.1f pts)", theme, cardName, score),
	}
}

func NewShortfallEvent(theme string, size, target int) BuildEvent {
	return BuildEvent{
		Phase:   "completion",
		Type:    EventShortfall,
		Theme:   theme,
		Details: fmt.Sprintf("%s under quota: %d/%d (pool exhausted)", theme, size, target),
	}
}

func NewViolationEvent(theme, detail string) BuildEvent {
	return BuildEvent{
		Phase:   "repair",
		Type:    EventViolation,
		Theme:   theme,
		Details: fmt.Sprintf("%s violates %s", theme, detail),
	}
}

func NewRepairPassEvent(theme string, pass int) BuildEvent {
	return BuildEvent{
		Phase:   "repair",
		Type:    EventRepairPass,
		Theme:   theme,
		Details: fmt.Sprintf("%s repair pass %d", theme, pass),
	}
}

func NewUnresolvedEvent(theme string, violations []string) BuildEvent {
	return BuildEvent{
		Phase:   "repair",
		Type:    EventUnresolved,
		Theme:   theme,
		Details: fmt.Sprintf("%s unresolved after repair cap: %s", theme, strings.Join(violations, ", ")),
	}
}

func NewBuildDoneEvent(assigned, leftover int) BuildEvent {
	return BuildEvent{
		Phase:   "final",
		Type:    EventBuildDone,
		Details: fmt.Sprintf("build complete: %d cards assigned, %d left in pool", assigned, leftover),
	}
}
