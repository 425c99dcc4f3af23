package mux

import (
	"errors"
	"fmt"
	"net/http"

	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/room"
)

type stakesResponse struct {
	Stakes   []texasholdem.Stakes `json:"stakes"`
	Defaults room.Settings        `json:"defaults"`
}

func (m *Mux) getStakes() http.HandlerFunc {
	payload := stakesResponse{
		Stakes:   m.config.Stakes,
		Defaults: m.config.Table.Settings(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}

type postRoomPayload struct {
	// Stakes is the name of a preset, if set the custom values are ignored
	Stakes        string `json:"stakes"`
	StartingChips int    `json:"startingChips"`
	MinCall       int    `json:"minCall"`
	MaxCall       int    `json:"maxCall"`
	MaxPlayers    int    `json:"maxPlayers"`
}

func (p postRoomPayload) settings(cfg roomDefaults) (room.Settings, error) {
	settings := cfg.settings

	maxPlayers := p.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = settings.Options.MaxPlayers
	}

	if p.Stakes != "" {
		stakes, ok := texasholdem.FindStakes(cfg.stakes, p.Stakes)
		if !ok {
			return room.Settings{}, fmt.Errorf("unknown stakes: %s", p.Stakes)
		}

		settings.Stakes = stakes.Name
		settings.Options = stakes.Options(maxPlayers)
		return settings, nil
	}

	if p.StartingChips == 0 && p.MinCall == 0 && p.MaxCall == 0 {
		settings.Options.MaxPlayers = maxPlayers
		return settings, nil
	}

	stakes := texasholdem.Stakes{
		StartingChips: p.StartingChips,
		MinCall:       p.MinCall,
		MaxCall:       p.MaxCall,
	}

	if err := stakes.Validate(); err != nil {
		return room.Settings{}, err
	}

	settings.Options = stakes.Options(maxPlayers)
	return settings, nil
}

type roomDefaults struct {
	settings room.Settings
	stakes   []texasholdem.Stakes
}

type postRoomResponse struct {
	Code     string        `json:"code"`
	Settings room.Settings `json:"settings"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	defaults := roomDefaults{
		settings: m.config.Table.Settings(),
		stakes:   m.config.Stakes,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRoomPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		settings, err := payload.settings(defaults)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := settings.Validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealer, err := m.pitBoss.CreateRoom(settings)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.logger.WithField("code", dealer.Code()).WithField("remoteAddr", remoteAddr(r)).Info("room requested")

		writeJSON(w, http.StatusCreated, postRoomResponse{
			Code:     dealer.Code(),
			Settings: dealer.Settings(),
		})
	}
}

func (m *Mux) getRoomCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxRoomKey).(*room.Dealer)

		summary, err := dealer.Summary(r.Context())
		if err != nil {
			if errors.Is(err, room.ErrRoomNotFound) {
				writeMaybeNotFoundError(w, err)
				return
			}

			writeJSONError(w, http.StatusServiceUnavailable, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
