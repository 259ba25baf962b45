// controllers/gameStore.go
package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"boardroom-sim/engine"
	"boardroom-sim/models"
)

// GameStore wraps the games collection with the transactional
// read-modify-write every mutation must go through. A blind ReplaceOne
// outside a transaction could clobber a team's concurrent selection, so
// nothing here offers one.
type GameStore struct {
	Client *mongo.Client
	Games  *mongo.Collection
}

func NewGameStore(client *mongo.Client, games *mongo.Collection) *GameStore {
	return &GameStore{Client: client, Games: games}
}

// Load fetches one game snapshot by id.
func (s *GameStore) Load(ctx context.Context, gameID string) (*models.Game, error) {
	if gameID == "" {
		return nil, engine.ErrMissingID
	}
	var game models.Game
	if err := s.Games.FindOne(ctx, bson.M{"id": gameID}).Decode(&game); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, engine.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to fetch game: %v", err)
	}
	return &game, nil
}

// Mutate runs fn against the latest snapshot inside a session transaction and
// persists the whole document only when fn reports a change. Either the
// read-modify-write commits against the version it read or the transaction
// fails; the caller decides about retries.
func (s *GameStore) Mutate(ctx context.Context, gameID string, fn func(*models.Game) (bool, error)) (*models.Game, bool, error) {
	if gameID == "" {
		return nil, false, engine.ErrMissingID
	}
	session, err := s.Client.StartSession()
	if err != nil {
		return nil, false, fmt.Errorf("failed to start session: %v", err)
	}
	defer session.EndSession(ctx)

	var game models.Game
	var changed bool
	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		game = models.Game{}
		changed = false
		if err := s.Games.FindOne(sessCtx, bson.M{"id": gameID}).Decode(&game); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, engine.ErrGameNotFound
			}
			return nil, err
		}
		var err error
		changed, err = fn(&game)
		if err != nil || !changed {
			return nil, err
		}
		if _, err := s.Games.ReplaceOne(sessCtx, bson.M{"id": gameID}, game); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if _, err := session.WithTransaction(ctx, callback); err != nil {
		return nil, false, err
	}
	return &game, changed, nil
}

// statusFor maps engine errors onto HTTP statuses. Anything unrecognized is a
// persistence fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrMissingID):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrGameNotFound),
		errors.Is(err, engine.ErrTeamNotFound),
		errors.Is(err, engine.ErrRoundNotFound),
		errors.Is(err, engine.ErrChoiceNotFound),
		errors.Is(err, engine.ErrEffectNotFound),
		errors.Is(err, engine.ErrNothingSelected):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func contextWithTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 10*time.Second)
}

// announce pushes a committed snapshot to every subscriber of the game.
func announce(hub *models.Hub, event string, game *models.Game) {
	hub.Broadcast <- models.WSMessage{Event: event, Game: game.ID, Data: game}
}
