package texasholdem

import "fmt"

// Reason is a machine-readable reason why a request was rejected
type Reason string

// rejection reasons
const (
	ReasonNoHandInProgress  Reason = "no_hand_in_progress"
	ReasonHandInProgress    Reason = "hand_in_progress"
	ReasonNotEnoughPlayers  Reason = "not_enough_players"
	ReasonTableFull         Reason = "table_full"
	ReasonAlreadySeated     Reason = "already_seated"
	ReasonUnknownPlayer     Reason = "unknown_player"
	ReasonNotYourTurn       Reason = "not_your_turn"
	ReasonUnknownAction     Reason = "unknown_action"
	ReasonCannotCheck       Reason = "cannot_check"
	ReasonNothingToCall     Reason = "nothing_to_call"
	ReasonRaiseTooSmall     Reason = "raise_too_small"
	ReasonBelowMinimumRaise Reason = "below_minimum_raise"
	ReasonInsufficientChips Reason = "insufficient_chips"
	ReasonActionNotReopened Reason = "action_not_reopened"
)

// Rejection is returned when a player attempts something that isn't allowed
// The game state is never modified when a rejection is returned.
type Rejection struct {
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(reason Reason, format string, a ...interface{}) *Rejection {
	return &Rejection{
		Reason:  reason,
		Message: fmt.Sprintf(format, a...),
	}
}
