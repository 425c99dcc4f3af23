package room

// Summary is an overview of a room, used by the lobby
type Summary struct {
	Code       string          `json:"code"`
	Settings   Settings        `json:"settings"`
	Players    []summaryPlayer `json:"players"`
	Queued     int             `json:"queued"`
	Clients    int             `json:"clients"`
	HandNumber int             `json:"handNumber"`
	InProgress bool            `json:"inProgress"`
}

type summaryPlayer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Bankroll int    `json:"bankroll"`
}

// NOTE: must only be called from the run loop
func (d *Dealer) summary() *Summary {
	state := d.game.State()

	players := make([]summaryPlayer, len(state.Players))
	for i, p := range state.Players {
		players[i] = summaryPlayer{
			ID:       p.ID,
			Name:     p.Name,
			Bankroll: p.Bankroll,
		}
	}

	return &Summary{
		Code:       d.code,
		Settings:   d.settings,
		Players:    players,
		Queued:     len(d.queued),
		Clients:    len(d.Clients()),
		HandNumber: state.HandNumber,
		InProgress: state.InProgress,
	}
}
