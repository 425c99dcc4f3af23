package texasholdem

import "holdem-server/pkg/playable/poker/action"

// ToCall returns the amount the player needs to put in to call
func (s *State) ToCall(p *Player) int {
	diff := s.CurrentBet - p.SubtotalBet
	if diff > p.Bankroll {
		return p.Bankroll
	}

	if diff < 0 {
		return 0
	}

	return diff
}

// MinRaiseTo returns the smallest round total the player may raise to
func (s *State) MinRaiseTo(p *Player) int {
	total := s.CurrentBet + s.MinRaise
	if limit := s.MaxRaiseTo(p); total > limit {
		return limit
	}

	return total
}

// MaxRaiseTo returns the largest round total the player may raise to
func (s *State) MaxRaiseTo(p *Player) int {
	total := p.Bankroll + p.SubtotalBet
	if s.Options.MaxBet > 0 && total > s.CurrentBet+s.Options.MaxBet {
		total = s.CurrentBet + s.Options.MaxBet
	}

	return total
}

// Actions returns the actions available to the player
// Only the player on the clock has actions available.
func (s *State) Actions(playerID int64) []action.Action {
	p, ok := s.CurrentActor()
	if !ok || p.ID != playerID {
		return []action.Action{}
	}

	actions := []action.Action{action.Fold}
	if p.SubtotalBet == s.CurrentBet {
		actions = append(actions, action.Check)
	} else {
		actions = append(actions, action.Call)
	}

	if !p.acted && p.Bankroll+p.SubtotalBet > s.CurrentBet {
		actions = append(actions, action.Raise)
	}

	return actions
}
