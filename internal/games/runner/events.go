package runner

// EventKind identifies something that happened during a tick.
type EventKind uint8

const (
	EventLanded EventKind = iota
	EventHit
	EventDied
	EventRespawned
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventHit:
		return "hit"
	case EventDied:
		return "died"
	case EventRespawned:
		return "respawned"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Cause says what killed or hurt the player.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseFall
	CauseHazard
	CauseEnemy
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseFall:
		return "fall"
	case CauseHazard:
		return "hazard"
	case CauseEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Event is one entry in a tick's event log.
type Event struct {
	Kind  EventKind
	Cause Cause
	Score int // Score at the moment of the event, before any reset
}

// GameOver is delivered to the host when the player dies.
type GameOver struct {
	FinalScore int
	Tick       int
	Cause      Cause
}
