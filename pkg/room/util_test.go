package room

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"holdem-server/internal/rng"
	"holdem-server/pkg/playable"
)

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setupDealer returns a dealer without a run loop, use runPending() to process queued work
func setupDealer(t *testing.T, settings Settings) (*Dealer, *quartz.Mock) {
	t.Helper()

	mClock := quartz.NewMock(t)
	pitBoss := NewPitBoss(discardLogger(), mClock, rng.NewSeeded(1))
	d, err := NewDealer(pitBoss, "TEST42", settings)
	if err != nil {
		t.Fatal(err)
	}

	return d, mClock
}

// runPending runs everything queued for the run loop
func runPending(d *Dealer) {
	for {
		select {
		case fn := <-d.execInRunLoop:
			d.safely(fn)
		default:
			return
		}
	}
}

// drain returns every message sent to the client so far
func drain(c *Client) []*playable.Response {
	var responses []*playable.Response
	for {
		select {
		case msg := <-c.SendChan():
			responses = append(responses, msg.(*playable.Response))
		default:
			return responses
		}
	}
}

func findResponse(t *testing.T, responses []*playable.Response, key string) *playable.Response {
	t.Helper()

	for _, res := range responses {
		if res.Key == key {
			return res
		}
	}

	t.Fatalf("no %q message in %d messages", key, len(responses))
	return nil
}

func hasResponse(responses []*playable.Response, key string) bool {
	for _, res := range responses {
		if res.Key == key {
			return true
		}
	}

	return false
}

func connect(d *Dealer) *Client {
	c := NewClient(nil)
	d.AddClient(c)
	runPending(d)
	drain(c)
	return c
}

func send(d *Dealer, c *Client, act, subject string, data playable.AdditionalData) []*playable.Response {
	c.ReceivedMessage(&playable.PayloadIn{
		Action:         act,
		Subject:        subject,
		AdditionalData: data,
		Context:        "ctx",
	})

	runPending(d)
	return drain(c)
}

// joinPlayers connects a client per name and joins the room
func joinPlayers(t *testing.T, d *Dealer, names ...string) []*Client {
	t.Helper()

	clients := make([]*Client, len(names))
	for i, name := range names {
		clients[i] = connect(d)
		responses := send(d, clients[i], "join_room", "", playable.AdditionalData{"name": name})
		findResponse(t, responses, keyJoinedRoom)
	}

	for _, c := range clients {
		drain(c)
	}

	return clients
}

// advance moves the mock clock and runs the timers that fired
func advance(t *testing.T, d *Dealer, mClock *quartz.Mock, duration time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	mClock.Advance(duration).MustWait(ctx)
	runPending(d)
}
