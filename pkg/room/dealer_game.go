package room

import (
	"fmt"
	"strings"

	"holdem-server/internal/util"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/texasholdem"
)

const maxNameLength = 24

// NOTE: every method in this file must only be called from the run loop

func (d *Dealer) handleMessage(c *Client, msg *playable.PayloadIn) {
	var err error

	switch msg.Action {
	case "join_room":
		err = d.join(c, msg)
	case "leave_room":
		err = d.leave(c, "left")
	case "start_game":
		err = d.startGame()
	case "player_action":
		err = d.playerAction(c, msg)
	case "get_game_state":
		c.Send(d.gameStateResponse(c, msg.Context))
		return
	default:
		d.logger.WithField("msg", msg).Warn("unknown message")
		err = newRejection(ReasonUnknownMessage, fmt.Sprintf("unknown message: %s", msg.Action))
	}

	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(playable.OK(msg.Context))
}

// seatsTaken counts seated and queued players
func (d *Dealer) seatsTaken() int {
	taken := len(d.queued)
	for _, p := range d.game.State().Players {
		if !d.leaving[p.ID] {
			taken++
		}
	}

	return taken
}

func (d *Dealer) join(c *Client, msg *playable.PayloadIn) error {
	if c.playerID != 0 {
		return newRejection(texasholdem.ReasonAlreadySeated, "you have already joined this room")
	}

	if d.seatsTaken() >= d.settings.Options.MaxPlayers {
		return newRejection(texasholdem.ReasonTableFull, "the table is full")
	}

	name, _ := msg.AdditionalData.GetString("name")
	name = strings.TrimSpace(name)
	if name == "" {
		name = util.RandomName(d.pitBoss.rng)
	} else if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}

	id := d.nextPlayerID + 1
	queued := d.game.InProgress()
	if queued {
		d.queued = append(d.queued, &queuedPlayer{ID: id, Name: name})
	} else if _, err := d.game.AddPlayer(id, name); err != nil {
		return err
	}

	d.nextPlayerID = id
	c.playerID = id

	c.Send(&playable.Response{
		Key: keyJoinedRoom,
		Data: joinedRoomData{
			PlayerID: id,
			Name:     name,
			Queued:   queued,
		},
		Context: msg.Context,
	})

	d.broadcast(keyPlayerJoined, joinedRoomData{PlayerID: id, Name: name, Queued: queued})
	d.addLogMessages(playable.SimpleLogMessage(id, "{} joined the room"))
	d.scheduleNextHand()
	d.broadcastState()

	return nil
}

func (d *Dealer) leave(c *Client, reason string) error {
	id := c.playerID
	if id == 0 {
		return newRejection(texasholdem.ReasonUnknownPlayer, "you have not joined this room")
	}

	c.playerID = 0
	d.broadcast(keyPlayerLeft, playerLeftData{PlayerID: id, Reason: reason})
	d.addLogMessages(playable.SimpleLogMessage(id, "{} left the room"))

	for i, q := range d.queued {
		if q.ID == id {
			d.queued = append(d.queued[:i], d.queued[i+1:]...)
			d.broadcastState()
			return nil
		}
	}

	if !d.game.InProgress() {
		if err := d.game.RemovePlayer(id); err != nil {
			return err
		}

		if !d.game.CanStartHand() {
			d.cancelNextHand()
		}

		d.broadcastState()
		return nil
	}

	// the player is folded when it's their turn and removed once the hand is over
	d.leaving[id] = true
	if actor, _ := d.game.CurrentActor(); actor != id {
		d.broadcastState()
		return nil
	}

	d.foldLeavingActor()
	return nil
}

func (d *Dealer) startGame() error {
	if d.game.InProgress() {
		return newRejection(texasholdem.ReasonHandInProgress, "a hand is already in progress")
	}

	started := d.started
	d.started = true
	if err := d.startHand(); err != nil {
		d.started = started
		return err
	}

	return nil
}

func (d *Dealer) startHand() error {
	d.cancelNextHand()

	effect, err := d.game.StartHand()
	if err != nil {
		return err
	}

	d.broadcastEach(keyGameStarted, func(c *Client) interface{} {
		return d.game.PublicState(c.playerID)
	})

	d.applyEffect(effect)
	return nil
}

func (d *Dealer) playerAction(c *Client, msg *playable.PayloadIn) error {
	if c.playerID == 0 {
		return newRejection(texasholdem.ReasonUnknownPlayer, "you have not joined this room")
	}

	act, err := action.FromString(msg.Subject)
	if err != nil {
		return newRejection(texasholdem.ReasonUnknownAction, err.Error())
	}

	amount, _ := msg.AdditionalData.GetInt("amount")
	effect, err := d.game.ApplyAction(texasholdem.Action{
		PlayerID: c.playerID,
		Action:   act,
		Amount:   amount,
	})
	if err != nil {
		return err
	}

	d.afterAction(c.playerID, act, effect, false)
	return nil
}

// turnExpired folds the player on the clock
func (d *Dealer) turnExpired(generation int64) {
	if !d.game.InProgress() || d.game.TurnGeneration() != generation {
		d.logger.WithField("generation", generation).Debug("ignoring stale turn timer")
		return
	}

	playerID, _ := d.game.CurrentActor()
	d.broadcast(keyTurnTimeout, turnTimeoutData{PlayerID: playerID})
	d.addLogMessages(playable.SimpleLogMessage(playerID, "{} ran out of time"))

	effect, err := d.game.ApplyAction(texasholdem.Action{PlayerID: playerID, Action: action.Fold})
	if err != nil {
		d.logger.WithError(err).WithField("type", "exception").Error("could not fold player after timeout")
		return
	}

	d.afterAction(playerID, action.Fold, effect, true)
}

// foldLeavingActor folds the player on the clock if they have left the room
func (d *Dealer) foldLeavingActor() {
	playerID, ok := d.game.CurrentActor()
	if !ok || !d.leaving[playerID] {
		return
	}

	effect, err := d.game.ApplyAction(texasholdem.Action{PlayerID: playerID, Action: action.Fold})
	if err != nil {
		d.logger.WithError(err).WithField("type", "exception").Error("could not fold player that left")
		return
	}

	d.afterAction(playerID, action.Fold, effect, false)
}

func (d *Dealer) afterAction(playerID int64, act action.Action, effect *texasholdem.Effect, timedOut bool) {
	d.broadcastEach(keyGameUpdate, func(c *Client) interface{} {
		return gameUpdateData{
			Action:   act,
			PlayerID: playerID,
			Amount:   effect.Amount,
			TimedOut: timedOut,
			State:    d.game.PublicState(c.playerID),
		}
	})

	d.applyEffect(effect)
}

func (d *Dealer) applyEffect(effect *texasholdem.Effect) {
	// hand messages are kept by the game, see PublicState.Log
	if len(effect.LogMessages) > 0 {
		d.broadcast(keyLog, effect.LogMessages)
	}

	for _, round := range effect.Rounds {
		d.broadcast(keyRoundAdvanced, round)
	}

	if effect.HandResolved() {
		d.broadcast(keyPlayerWin, playerWinData{Result: effect.Result})
		d.finishHand(effect.Result)
		d.broadcastState()
		return
	}

	d.armTurnTimer()
	d.foldLeavingActor()
}

func (d *Dealer) armTurnTimer() {
	playerID, ok := d.game.CurrentActor()
	if !ok {
		d.turnTimer.stop()
		return
	}

	d.turnTimer.arm(d.game.TurnGeneration(), playerID, func(generation int64) {
		d.exec(func() {
			d.turnExpired(generation)
		})
	})
}

// finishHand removes players that left or busted and seats the queued players
func (d *Dealer) finishHand(result *texasholdem.HandResult) {
	d.turnTimer.stop()

	for playerID := range d.leaving {
		if err := d.game.RemovePlayer(playerID); err != nil {
			d.logger.WithError(err).WithField("playerID", playerID).Error("could not remove player")
		}
	}
	d.leaving = make(map[int64]bool)

	for _, playerID := range result.Busted {
		if _, ok := d.game.State().Player(playerID); !ok {
			continue
		}

		if err := d.game.RemovePlayer(playerID); err != nil {
			d.logger.WithError(err).WithField("playerID", playerID).Error("could not remove busted player")
			continue
		}

		if c := d.clientForPlayer(playerID); c != nil {
			c.playerID = 0
		}

		d.broadcast(keyPlayerLeft, playerLeftData{PlayerID: playerID, Reason: "busted"})
		d.addLogMessages(playable.SimpleLogMessage(playerID, "{} is out of chips"))
	}

	for _, q := range d.queued {
		if _, err := d.game.AddPlayer(q.ID, q.Name); err != nil {
			d.logger.WithError(err).WithField("playerID", q.ID).Error("could not seat queued player")
			if c := d.clientForPlayer(q.ID); c != nil {
				c.playerID = 0
				c.Send(newErrorResponse("", err))
			}
		}
	}
	d.queued = nil

	d.scheduleNextHand()
}

// scheduleNextHand deals the next hand after a delay once the game has been started
func (d *Dealer) scheduleNextHand() {
	if !d.started || d.pendingHand != nil || !d.game.CanStartHand() {
		return
	}

	d.pendingHand = newPendingHand(d.clock, d.settings.NextHandDelay, func() {
		d.exec(d.startPendingHand)
	})
}

func (d *Dealer) startPendingHand() {
	if d.pendingHand == nil {
		return
	}

	d.pendingHand = nil
	if err := d.startHand(); err != nil {
		d.logger.WithError(err).Debug("could not start the next hand")
		d.broadcastState()
	}
}

func (d *Dealer) cancelNextHand() {
	if d.pendingHand != nil {
		d.pendingHand.cancel()
		d.pendingHand = nil
	}
}
