package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
)

// State is the complete state of a table
// A State is treated as a value: StartHand() and Apply() never modify the state passed in.
type State struct {
	Options Options
	// Players are ordered by seat
	Players []*Player
	// Button is the index in Players of the dealer button
	Button int

	InProgress bool
	HandNumber int
	Round      Round
	Community  deck.Hand

	// Pot holds the chips collected from completed rounds
	Pot int
	// Carry holds chips nobody could win last hand, they seed the next pot
	Carry int

	CurrentBet int
	MinRaise   int

	// Actor is the index in Players of the player on the clock, or -1
	Actor int
	// TurnGeneration changes every time the player on the clock changes
	TurnGeneration int64

	// Revealed is true once the hand went to showdown
	Revealed   bool
	LastResult *HandResult

	deck *deck.Deck
}

// NewState returns an empty table
func NewState(opts Options) *State {
	return &State{
		Options: opts,
		Players: make([]*Player, 0, opts.MaxPlayers),
		Actor:   -1,
	}
}

// Action is a request from a player to perform an action
type Action struct {
	PlayerID int64
	Action   action.Action
	// Amount is the new round total for a raise
	Amount int
}

// RoundAdvance describes newly revealed community cards
type RoundAdvance struct {
	Round Round     `json:"round"`
	Cards deck.Hand `json:"cards"`
}

// Effect describes what happened as a result of a transition
type Effect struct {
	// Amount is the number of chips the acting player put in
	Amount      int                    `json:"amount"`
	Rounds      []RoundAdvance         `json:"rounds"`
	Result      *HandResult            `json:"result"`
	LogMessages []*playable.LogMessage `json:"-"`
}

// RoundAdvanced returns true if community cards were dealt
func (e *Effect) RoundAdvanced() bool {
	return len(e.Rounds) > 0
}

// HandResolved returns true if the hand ended
func (e *Effect) HandResolved() bool {
	return e.Result != nil
}

func (e *Effect) log(msg *playable.LogMessage) {
	e.LogMessages = append(e.LogMessages, msg)
}

func (s *State) clone() *State {
	cp := *s
	cp.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.clone()
	}

	cp.Community = s.Community.Clone()
	if s.deck != nil {
		cp.deck = s.deck.Clone()
	}

	return &cp
}

// Player returns the player with the given ID
func (s *State) Player(id int64) (*Player, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Players[i], true
	}

	return nil, false
}

// CurrentActor returns the player on the clock
func (s *State) CurrentActor() (*Player, bool) {
	if !s.InProgress || s.Actor < 0 {
		return nil, false
	}

	return s.Players[s.Actor], true
}

func (s *State) indexOf(id int64) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}

	return -1
}

func (s *State) next(i int) int {
	return (i + 1) % len(s.Players)
}

// clockwise returns the players in seat order starting left of the button
func (s *State) clockwise() []*Player {
	n := len(s.Players)
	players := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		players = append(players, s.Players[(s.Button+i)%n])
	}

	return players
}

func (s *State) countInHand() int {
	count := 0
	for _, p := range s.Players {
		if p.InHand() {
			count++
		}
	}

	return count
}

func (s *State) countCanAct() int {
	count := 0
	for _, p := range s.Players {
		if p.CanAct() {
			count++
		}
	}

	return count
}

// needsToAct returns true if the player still owes a decision this round
func (s *State) needsToAct(p *Player) bool {
	return p.CanAct() && (!p.acted || p.SubtotalBet < s.CurrentBet)
}

// IsRoundComplete returns true when every player that can act has acted and matched the bet
func (s *State) IsRoundComplete() bool {
	for _, p := range s.Players {
		if s.needsToAct(p) {
			return false
		}
	}

	return true
}

// nextToAct finds the first player after index from that still needs to act
func (s *State) nextToAct(from int) int {
	for i, idx := 0, from; i < len(s.Players); i++ {
		idx = s.next(idx)
		if s.needsToAct(s.Players[idx]) {
			return idx
		}
	}

	panic("round is not complete, but nobody needs to act")
}

func (s *State) fundedPlayers() int {
	count := 0
	for _, p := range s.Players {
		if p.Bankroll > 0 {
			count++
		}
	}

	return count
}

func (s *State) insertPlayer(p *Player) {
	pos := len(s.Players)
	for i, existing := range s.Players {
		if existing.Seat > p.Seat {
			pos = i
			break
		}
	}

	s.Players = append(s.Players, nil)
	copy(s.Players[pos+1:], s.Players[pos:])
	s.Players[pos] = p

	if len(s.Players) > 1 && pos <= s.Button {
		s.Button++
	}
}

// removePlayerAt removes the player and keeps the button in place
// If the button player is removed, the button moves back one seat so that the
// next rotation lands on the following player.
func (s *State) removePlayerAt(i int) {
	s.Players = append(s.Players[:i], s.Players[i+1:]...)
	if i <= s.Button {
		s.Button--
	}

	if s.Button < 0 {
		s.Button = len(s.Players) - 1
	}

	if s.Button < 0 {
		s.Button = 0
	}
}

// removeBusted removes every busted player
func (s *State) removeBusted() []int64 {
	var removed []int64
	for i := len(s.Players) - 1; i >= 0; i-- {
		if p := s.Players[i]; p.Status == StatusBusted || p.Bankroll == 0 {
			removed = append(removed, p.ID)
			s.removePlayerAt(i)
		}
	}

	return removed
}

// TotalChips returns every chip on the table, used to verify chips are conserved
func (s *State) TotalChips() int {
	total := s.Carry + s.Pot

	for _, p := range s.Players {
		total += p.Bankroll + p.SubtotalBet
	}

	return total
}
