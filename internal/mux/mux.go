package mux

import (
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"holdem-server/internal/config"
	"holdem-server/pkg/room"
)

type ctxKey int

const (
	ctxRoomKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	logger  logrus.FieldLogger
	config  config.Config
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(logger logrus.FieldLogger, cfg config.Config, pitBoss *room.PitBoss, version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		logger:  logger,
		config:  cfg,
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/stakes").Handler(this.getStakes())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

	rr := r.PathPrefix("/room/{code:[A-Za-z0-9]{6}}").Subrouter()
	rr.Use(this.roomMiddleware)

	rr.Methods(http.MethodGet).Path("").Handler(this.getRoomCode())
	rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomCodeWS())

	return this
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(gmux.Vars(r)["code"])
		dealer, err := m.pitBoss.Room(code)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoomKey, dealer)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
