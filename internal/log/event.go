package log

// EventType enumerates all observable build events.
type EventType int

const (
	EventPhaseStart EventType = iota
	EventPhaseEnd
	EventReserve
	EventColorAssign
	EventAssign
	EventComplete
	EventSkip
	EventRemove
	EventBackfill
	EventShortfall
	EventViolation
	EventRepairPass
	EventUnresolved
	EventBuildDone
)

func (e EventType) String() string {
	switch e {
	case EventPhaseStart:
		return "PhaseStart"
	case EventPhaseEnd:
		return "PhaseEnd"
	case EventReserve:
		return "Reserve"
	case EventColorAssign:
		return "ColorAssign"
	case EventAssign:
		return "Assign"
	case EventComplete:
		return "Complete"
	case EventSkip:
		return "Skip"
	case EventRemove:
		return "Remove"
	case EventBackfill:
		return "Backfill"
	case EventShortfall:
		return "Shortfall"
	case EventViolation:
		return "Violation"
	case EventRepairPass:
		return "RepairPass"
	case EventUnresolved:
		return "Unresolved"
	case EventBuildDone:
		return "BuildDone"
	default:
		return "Unknown"
	}
}

// BuildEvent represents a single observable event during deck construction.
type BuildEvent struct {
	Seq     int       // monotonic sequence number
	Phase   string    // engine phase name (e.g. "reservation")
	Type    EventType // event type
	Theme   string    // theme name (if applicable)
	Card    string    // card name (if applicable)
	Score   float64   // score attached to the action (if applicable)
	Details string    // human-readable detail string
}
