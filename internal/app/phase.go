package app

// Phase is the bootstrap state machine:
// Idle → CheckingStorage → {Authenticated, Unauthenticated}.
// No protected action may be dispatched before the check settles.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCheckingStorage
	PhaseAuthenticated
	PhaseUnauthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCheckingStorage:
		return "checking_storage"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}
