package assign

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"jumpcube/internal/card"
	"jumpcube/internal/log"
	"jumpcube/internal/theme"
)

// State names the orchestrator's position in the phase pipeline. States
// only advance; the repair loop inside StateValidating is the sole cycle
// and it is iteration-capped.
type State int

const (
	StateInit State = iota
	StateReserved
	StateColorAssigned
	StateGeneralAssigned
	StateCompleted
	StateValidating
	StateFinal
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateReserved:
		return "RESERVED"
	case StateColorAssigned:
		return "COLOR_ASSIGNED"
	case StateGeneralAssigned:
		return "GENERAL_ASSIGNED"
	case StateCompleted:
		return "COMPLETED"
	case StateValidating:
		return "VALIDATING"
	case StateFinal:
		return "FINAL"
	default:
		return "UNKNOWN"
	}
}

// Config holds everything a run needs. Catalog and Registry are never
// mutated by the engine.
type Config struct {
	Catalog     *card.Catalog
	Registry    *theme.Registry
	Constraints Constraints
	Logger      log.EventLogger // optional; defaults to an in-memory logger
}

// Builder sequences the five phases over one shared allocation context.
// A Builder runs exactly once.
type Builder struct {
	alloc  *Allocation
	scores *scoreSet
	logger log.EventLogger
	state  State
}

// NewBuilder validates the configuration and prepares a run. An
// inconsistent constraint set fails here, before any assignment happens.
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.Catalog == nil || cfg.Catalog.Len() == 0 {
		return nil, errors.New("empty catalog")
	}
	if cfg.Registry == nil || cfg.Registry.Len() == 0 {
		return nil, errors.New("empty theme registry")
	}
	if err := cfg.Constraints.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Builder{
		alloc:  newAllocation(cfg.Catalog, cfg.Registry, cfg.Constraints),
		scores: newScoreSet(cfg.Registry),
		logger: logger,
		state:  StateInit,
	}, nil
}

// State returns the orchestrator's current state.
func (b *Builder) State() State {
	return b.state
}

// Run executes all five phases and freezes the allocation into a Result.
// Per-theme shortfalls and unresolved repairs surface as diagnostics on
// the Result; the only runtime error is the defensive uniqueness check.
func (b *Builder) Run() (*Result, error) {
	if b.state != StateInit {
		return nil, fmt.Errorf("builder already ran (state %s)", b.state)
	}

	b.reserve()
	b.state = StateReserved

	b.colorAssign()
	b.state = StateColorAssigned

	b.generalAssign()
	b.state = StateGeneralAssigned

	b.complete()
	b.state = StateCompleted

	b.state = StateValidating
	b.repair()

	if err := b.alloc.checkUniqueness(); err != nil {
		return nil, err
	}
	b.state = StateFinal

	b.logger.Log(log.NewBuildDoneEvent(b.alloc.assignedCount(), len(b.alloc.pool)))
	return b.buildResult(uuid.NewString()), nil
}
