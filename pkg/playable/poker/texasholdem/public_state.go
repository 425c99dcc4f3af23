package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/handanalyzer"
)

// PlayerState is the public state of a player
type PlayerState struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Seat        int       `json:"seat"`
	Bankroll    int       `json:"bankroll"`
	SubtotalBet int       `json:"subtotalBet"`
	TotalBet    int       `json:"totalBet"`
	Status      Status    `json:"status"`
	IsButton    bool      `json:"isButton"`
	IsTurn      bool      `json:"isTurn"`
	HasCards    bool      `json:"hasCards"`
	Blinded     bool      `json:"blinded"`
	Hand        deck.Hand `json:"hand"`
}

// ViewerState is the state that only the viewer can see
type ViewerState struct {
	ID         int64           `json:"id"`
	Hand       deck.Hand       `json:"hand"`
	HandRank   string          `json:"handRank"`
	Actions    []action.Action `json:"actions"`
	ToCall     int             `json:"toCall"`
	MinRaiseTo int             `json:"minRaiseTo"`
	MaxRaiseTo int             `json:"maxRaiseTo"`
}

// PublicState is the state of the table as seen by a single viewer
type PublicState struct {
	HandNumber     int                    `json:"handNumber"`
	InProgress     bool                   `json:"inProgress"`
	Round          Round                  `json:"round"`
	Community      []*deck.Card           `json:"community"`
	Pot            int                    `json:"pot"`
	CurrentBet     int                    `json:"currentBet"`
	MinRaise       int                    `json:"minRaise"`
	SmallBlind     int                    `json:"smallBlind"`
	BigBlind       int                    `json:"bigBlind"`
	MaxBet         int                    `json:"maxBet"`
	Button         int64                  `json:"button"`
	Actor          int64                  `json:"actor"`
	TurnGeneration int64                  `json:"turnGeneration"`
	Players        []*PlayerState         `json:"players"`
	Viewer         *ViewerState           `json:"viewer"`
	LastResult     *HandResult            `json:"lastResult"`
	Log            []*playable.LogMessage `json:"log"`
}

// CommunitySlots is the number of community cards dealt in a full hand
const CommunitySlots = 5

// PublicState returns the state as seen by the viewer
// Hole cards are only visible to their owner, except at showdown when every player still in
// the hand shows their cards. Folded players' cards are never shown.
func (s *State) PublicState(viewerID int64) *PublicState {
	ps := &PublicState{
		HandNumber:     s.HandNumber,
		InProgress:     s.InProgress,
		Round:          s.Round,
		Community:      make([]*deck.Card, CommunitySlots),
		Pot:            s.Pot,
		CurrentBet:     s.CurrentBet,
		MinRaise:       s.MinRaise,
		SmallBlind:     s.Options.SmallBlind,
		BigBlind:       s.Options.BigBlind,
		MaxBet:         s.Options.MaxBet,
		TurnGeneration: s.TurnGeneration,
		Players:        make([]*PlayerState, len(s.Players)),
		LastResult:     s.LastResult,
	}

	// empty slots are nil, which is different from a blinded card
	copy(ps.Community, s.Community)

	if len(s.Players) > 0 {
		ps.Button = s.Players[s.Button].ID
	}

	if actor, ok := s.CurrentActor(); ok {
		ps.Actor = actor.ID
	}

	for i, p := range s.Players {
		ps.Pot += p.SubtotalBet
		ps.Players[i] = s.playerState(i, p, viewerID)

		if p.ID == viewerID {
			ps.Viewer = s.viewerState(p)
		}
	}

	return ps
}

func (s *State) playerState(i int, p *Player, viewerID int64) *PlayerState {
	ps := &PlayerState{
		ID:          p.ID,
		Name:        p.Name,
		Seat:        p.Seat,
		Bankroll:    p.Bankroll,
		SubtotalBet: p.SubtotalBet,
		TotalBet:    p.TotalBet,
		Status:      p.Status,
		IsButton:    i == s.Button,
		IsTurn:      s.InProgress && i == s.Actor,
	}

	// showdown losers that busted keep their cards on display
	if len(p.HoleCards) > 0 {
		ps.HasCards = p.InHand() || (s.Revealed && p.Status != StatusFolded)
	}

	switch {
	case !ps.HasCards:
	case p.ID == viewerID, s.Revealed:
		ps.Hand = p.HoleCards
	default:
		ps.Blinded = true
	}

	return ps
}

func (s *State) viewerState(p *Player) *ViewerState {
	vs := &ViewerState{
		ID:      p.ID,
		Hand:    p.HoleCards,
		Actions: s.Actions(p.ID),
		ToCall:  s.ToCall(p),
	}

	if len(vs.Actions) > 0 {
		vs.MinRaiseTo = s.MinRaiseTo(p)
		vs.MaxRaiseTo = s.MaxRaiseTo(p)
	}

	if len(p.HoleCards) > 0 {
		eval := handanalyzer.Evaluate(append(p.HoleCards.Clone(), s.Community...))
		vs.HandRank = eval.Describe()
	}

	return vs
}
