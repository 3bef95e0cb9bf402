package tele

type State byte

const (
	State_Invalid State = iota
	State_Connecting
	State_Streaming
	State_Shutdown
)

func (s State) String() string {
	switch s {
	case State_Connecting:
		return "connecting"
	case State_Streaming:
		return "streaming"
	case State_Shutdown:
		return "shutdown"
	}
	return "invalid"
}
