package room

import (
	"errors"
	"time"

	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// outgoing message keys
const (
	keyConnected     = "connected"
	keyJoinedRoom    = "joined_room"
	keyPlayerJoined  = "player_joined"
	keyPlayerLeft    = "player_left"
	keyGameStarted   = "game_started"
	keyGameUpdate    = "game_update"
	keyRoundAdvanced = "round_advanced"
	keyPlayerWin     = "player_win"
	keyGameState     = "game_state"
	keyTurnTimeout   = "turn_timeout"
	keyLog           = "log"
	keyError         = "error"
)

// ReasonUnknownMessage is sent when the client sends a message the room does not understand
const ReasonUnknownMessage texasholdem.Reason = "unknown_message"

type errorData struct {
	Message string             `json:"message"`
	Reason  texasholdem.Reason `json:"reason,omitempty"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	data := errorData{Message: err.Error()}

	var rejection *texasholdem.Rejection
	if errors.As(err, &rejection) {
		data.Reason = rejection.Reason
	}

	return &playable.Response{
		Key:     keyError,
		Value:   err.Error(),
		Data:    data,
		Context: ctx,
	}
}

func newRejection(reason texasholdem.Reason, message string) *texasholdem.Rejection {
	return &texasholdem.Rejection{
		Reason:  reason,
		Message: message,
	}
}

type connectedData struct {
	ClientID string `json:"clientId"`
	Code     string `json:"code"`
}

type joinedRoomData struct {
	PlayerID int64  `json:"playerId"`
	Name     string `json:"name"`
	// Queued is true if the player will be seated when the current hand ends
	Queued bool `json:"queued"`
}

type playerLeftData struct {
	PlayerID int64  `json:"playerId"`
	Reason   string `json:"reason"`
}

type gameUpdateData struct {
	Action   action.Action            `json:"action"`
	PlayerID int64                    `json:"playerId"`
	Amount   int                      `json:"amount"`
	TimedOut bool                     `json:"timedOut"`
	State    *texasholdem.PublicState `json:"state"`
}

type playerWinData struct {
	Result *texasholdem.HandResult `json:"result"`
}

type turnTimeoutData struct {
	PlayerID int64 `json:"playerId"`
}

// gameStateData is a full snapshot of the room for a single client
type gameStateData struct {
	Code     string                   `json:"code"`
	Settings Settings                 `json:"settings"`
	PlayerID int64                    `json:"playerId"`
	Queued   []*queuedPlayer          `json:"queued"`
	State    *texasholdem.PublicState `json:"state"`
	// TurnDeadline is when the player on the clock will be folded
	TurnDeadline *time.Time             `json:"turnDeadline"`
	NextHand     *pendingHand           `json:"nextHand"`
	Log          []*playable.LogMessage `json:"log"`
}
