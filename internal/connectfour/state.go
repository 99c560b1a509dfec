package connectfour

type State int

const (
	StateAwaitingTokens State = iota
	StateInProgress
	StateRoundOver
	StateAwaitingReplayChoice
	StateEnded
)

func (that State) String() string {
	switch that {
	case StateAwaitingTokens:
		return "awaiting_tokens"
	case StateInProgress:
		return "in_progress"
	case StateRoundOver:
		return "round_over"
	case StateAwaitingReplayChoice:
		return "awaiting_replay_choice"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}
