package keystore

// State is the lifecycle state of a [KeyStore].
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}
