package texasholdem

import (
	"fmt"

	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"holdem-server/pkg/playable/poker/potmanager"
)

// StartHand shuffles a new deck, deals the hole cards, and posts the blinds
func StartHand(s *State, r rng.Generator) (*State, *Effect, error) {
	if s.InProgress {
		return s, nil, reject(ReasonHandInProgress, "a hand is already in progress")
	}

	ns := s.clone()
	ns.removeBusted()
	if ns.fundedPlayers() < 2 {
		return s, nil, reject(ReasonNotEnoughPlayers, "at least two players with chips are required")
	}

	if ns.HandNumber > 0 {
		ns.Button = ns.next(ns.Button)
	}

	ns.HandNumber++
	ns.InProgress = true
	ns.Round = RoundPreFlop
	ns.Community = deck.Hand{}
	ns.Pot = ns.Carry
	ns.Carry = 0
	ns.Revealed = false
	ns.LastResult = nil
	ns.deck = deck.NewShuffled(r)

	// hole cards, the board, and a burn card before each street
	if need := 2*len(ns.Players) + 5 + 3; !ns.deck.CanDraw(need) {
		return s, nil, fmt.Errorf("cannot deal %d players from a single deck", len(ns.Players))
	}

	for _, p := range ns.Players {
		p.resetForHand()
	}

	effect := &Effect{}
	effect.log(playable.SimpleLogMessage(0, "hand #%d started", ns.HandNumber))

	for i := 0; i < 2; i++ {
		for _, p := range ns.clockwise() {
			p.HoleCards.AddCard(ns.mustDraw())
		}
	}

	sb, bb := ns.next(ns.Button), ns.next(ns.next(ns.Button))
	if len(ns.Players) == 2 {
		// heads-up, the button posts the small blind
		sb, bb = ns.Button, ns.next(ns.Button)
	}

	ns.postBlind(ns.Players[sb], ns.Options.SmallBlind, "small", effect)
	ns.postBlind(ns.Players[bb], ns.Options.BigBlind, "big", effect)
	ns.CurrentBet = ns.Options.BigBlind
	ns.MinRaise = ns.Options.BigBlind

	ns.advance(bb, effect)
	return ns, effect, nil
}

func (s *State) postBlind(p *Player, blind int, name string, effect *Effect) {
	amount := blind
	if amount > p.Bankroll {
		amount = p.Bankroll
	}

	p.bet(amount)
	effect.log(playable.SimpleLogMessage(p.ID, "{} posted the %s blind of ${%d}", name, amount))
}

func (s *State) mustDraw() *deck.Card {
	card, err := s.deck.Draw()
	if err != nil {
		panic(fmt.Sprintf("could not draw card: %v", err))
	}

	return card
}

// CancelHand ends the hand in progress without paying out
// Every player gets back what they bet this hand, the pot keeps only the carry.
func CancelHand(s *State) (*State, *Effect, error) {
	if !s.InProgress {
		return s, nil, reject(ReasonNoHandInProgress, "there is no hand in progress")
	}

	ns := s.clone()
	carry := ns.Pot
	for _, p := range ns.Players {
		carry -= p.TotalBet
		p.Bankroll += p.TotalBet + p.SubtotalBet
		p.resetForHand()
	}

	ns.InProgress = false
	ns.Actor = -1
	ns.TurnGeneration++
	ns.Pot = 0
	ns.Carry = carry
	ns.CurrentBet = 0
	ns.MinRaise = ns.Options.BigBlind
	ns.Community = deck.Hand{}
	ns.deck = nil

	effect := &Effect{}
	effect.log(playable.SimpleLogMessage(0, "hand #%d was cancelled, all bets were returned", ns.HandNumber))
	return ns, effect, nil
}

// Apply validates and applies a player action
// On success the new state is returned along with the effect of the action. If the action is
// rejected, the original state is returned untouched along with a *Rejection.
func Apply(s *State, a Action) (*State, *Effect, error) {
	if !s.InProgress {
		return s, nil, reject(ReasonNoHandInProgress, "there is no hand in progress")
	}

	idx := s.indexOf(a.PlayerID)
	if idx < 0 {
		return s, nil, reject(ReasonUnknownPlayer, "you are not seated at this table")
	}

	if idx != s.Actor {
		return s, nil, reject(ReasonNotYourTurn, "it is not your turn")
	}

	ns := s.clone()
	p := ns.Players[idx]
	effect := &Effect{}

	switch a.Action {
	case action.Fold:
		p.Status = StatusFolded
		p.acted = true
	case action.Check:
		if p.SubtotalBet != ns.CurrentBet {
			return s, nil, reject(ReasonCannotCheck, "you cannot check, ${%d} to call", ns.CurrentBet-p.SubtotalBet)
		}

		p.acted = true
	case action.Call:
		if ns.CurrentBet <= p.SubtotalBet {
			return s, nil, reject(ReasonNothingToCall, "there is nothing to call")
		}

		amount := ns.CurrentBet - p.SubtotalBet
		if amount > p.Bankroll {
			amount = p.Bankroll
		}

		p.bet(amount)
		p.acted = true
		effect.Amount = amount
	case action.Raise:
		amount, rejection := ns.raise(p, a.Amount)
		if rejection != nil {
			return s, nil, rejection
		}

		effect.Amount = amount
	default:
		return s, nil, reject(ReasonUnknownAction, "unknown action: %s", a.Action)
	}

	logAmount := effect.Amount
	if a.Action == action.Raise {
		logAmount = p.SubtotalBet
	}
	effect.log(playable.SimpleLogMessage(p.ID, "{} %s", a.Action.LogMessage(logAmount)))

	ns.advance(idx, effect)
	return ns, effect, nil
}

// raise performs a raise to the new round total
// Returns the amount of chips added to the pot
func (s *State) raise(p *Player, total int) (int, *Rejection) {
	if p.acted {
		return 0, reject(ReasonActionNotReopened, "the betting was not reopened, you may only call or fold")
	}

	available := p.Bankroll + p.SubtotalBet
	if available <= s.CurrentBet {
		return 0, reject(ReasonInsufficientChips, "you do not have enough chips to raise")
	}

	if total <= s.CurrentBet {
		return 0, reject(ReasonRaiseTooSmall, "you must raise to more than the current bet of ${%d}", s.CurrentBet)
	}

	if s.Options.MaxBet > 0 && total-s.CurrentBet > s.Options.MaxBet {
		total = s.CurrentBet + s.Options.MaxBet
	}

	if total > available {
		total = available
	}

	increase := total - s.CurrentBet
	isAllIn := total == available
	if increase < s.MinRaise && !isAllIn {
		return 0, reject(ReasonBelowMinimumRaise, "Minimum raise amount is ${%d}, you must raise to at least ${%d}", s.MinRaise, s.CurrentBet+s.MinRaise)
	}

	amount := total - p.SubtotalBet
	p.bet(amount)
	p.acted = true

	// an all-in for less than a full raise does not reopen the betting
	if increase >= s.MinRaise {
		s.MinRaise = increase
		for _, other := range s.Players {
			if other != p {
				other.acted = false
			}
		}
	}

	s.CurrentBet = total
	return amount, nil
}

// advance moves the game forward after the player at index from has acted
// It picks the next player, deals the next round, or resolves the hand.
func (s *State) advance(from int, effect *Effect) {
	s.TurnGeneration++

	for {
		if s.countInHand() == 1 {
			s.awardUncontested(effect)
			return
		}

		if !s.IsRoundComplete() {
			s.Actor = s.nextToAct(from)
			return
		}

		s.collectBets()
		if s.Round == RoundRiver {
			s.showdown(effect)
			return
		}

		s.dealRound(effect)
		from = s.Button
	}
}

func (s *State) collectBets() {
	for _, p := range s.Players {
		p.TotalBet += p.SubtotalBet
		s.Pot += p.SubtotalBet
		p.SubtotalBet = 0
	}

	s.CurrentBet = 0
	s.MinRaise = s.Options.BigBlind
}

func (s *State) dealRound(effect *Effect) {
	s.Round++

	if err := s.deck.Burn(); err != nil {
		panic(fmt.Sprintf("could not burn card: %v", err))
	}

	cards := make(deck.Hand, 0, s.Round.cardsToDeal())
	for i := 0; i < s.Round.cardsToDeal(); i++ {
		cards.AddCard(s.mustDraw())
	}

	s.Community = append(s.Community, cards...)
	effect.Rounds = append(effect.Rounds, RoundAdvance{Round: s.Round, Cards: cards})
	effect.log(playable.NewLogMessage(nil, cards, "dealt the %s", s.Round))

	// with fewer than two players able to bet, there is nobody left to bet against
	canBet := s.countCanAct() >= 2
	for _, p := range s.Players {
		p.acted = !canBet
	}
}

func (s *State) awardUncontested(effect *Effect) {
	s.collectBets()

	var winner *Player
	for _, p := range s.Players {
		if p.InHand() {
			winner = p
			break
		}
	}

	amount := s.Pot
	winner.Bankroll += amount
	s.Pot = 0

	effect.log(playable.SimpleLogMessage(winner.ID, "{} won ${%d}", amount))
	s.finishHand(&HandResult{
		HandNumber:  s.HandNumber,
		Uncontested: true,
		Winners:     []int64{winner.ID},
		Payouts:     map[int64]int{winner.ID: amount},
	}, effect)
}

func (s *State) showdown(effect *Effect) {
	s.Round = RoundShowdown
	s.Revealed = true

	contributed := 0
	participants := make([]potmanager.Participant, 0, len(s.Players))
	for _, p := range s.clockwise() {
		contributed += p.TotalBet
		participants = append(participants, showdownEntry{Player: p, community: s.Community})
	}

	distribution, err := potmanager.Distribute(participants, s.Pot-contributed)
	if err != nil {
		panic(fmt.Sprintf("showdown failed: %v", err))
	}

	result := &HandResult{
		HandNumber: s.HandNumber,
		Pots:       distribution.Pots,
		Payouts:    distribution.Payouts,
		Hands:      make(map[int64]ShowdownHand),
	}

	for _, p := range s.clockwise() {
		if p.InHand() {
			eval := handanalyzer.Evaluate(append(p.HoleCards.Clone(), s.Community...))
			result.Hands[p.ID] = ShowdownHand{
				Cards:       p.HoleCards,
				Hand:        eval.Hand,
				Description: eval.Describe(),
			}
		}

		if amount, ok := distribution.Payouts[p.ID]; ok {
			p.Bankroll += amount
			result.Winners = append(result.Winners, p.ID)
			effect.log(playable.NewLogMessage([]int64{p.ID}, p.HoleCards, "{} won ${%d} with %s", amount, result.Hands[p.ID].Description))
		}
	}

	s.Pot = 0
	s.Carry = distribution.Remainder
	s.finishHand(result, effect)
}

func (s *State) finishHand(result *HandResult, effect *Effect) {
	s.InProgress = false
	s.Actor = -1

	remaining := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.Bankroll == 0 {
			p.Status = StatusBusted
			result.Busted = append(result.Busted, p.ID)
			continue
		}

		remaining = append(remaining, p)
	}

	// with a single player left nobody can win the carry in a future hand
	if len(remaining) == 1 && s.Carry > 0 {
		remaining[0].Bankroll += s.Carry
		result.Payouts[remaining[0].ID] += s.Carry
		s.Carry = 0
	}

	result.Carry = s.Carry
	s.LastResult = result
	effect.Result = result
}
