// controllers/lifecycleController.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"boardroom-sim/engine"
	"boardroom-sim/models"
)

// LifecycleController drives the facilitator's round navigation. Every
// transition is one transactional write of the full snapshot followed by a
// push to all subscribers. A transition whose precondition fails commits
// nothing and still answers 200 with the unchanged snapshot, because stale
// facilitator views and double clicks are normal traffic.
type LifecycleController struct {
	Store *GameStore
	Hub   *models.Hub
}

func NewLifecycleController(store *GameStore, hub *models.Hub) *LifecycleController {
	return &LifecycleController{Store: store, Hub: hub}
}

func (lc *LifecycleController) transition(c *gin.Context, event string, apply func(*models.Game, time.Time) bool) {
	gameID := c.Param("id")
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	now := time.Now().UTC()
	game, changed, err := lc.Store.Mutate(ctx, gameID, func(g *models.Game) (bool, error) {
		return apply(g, now), nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if changed {
		log.Printf("game %s: %s (round index %d)", game.ID, event, game.CurrentRoundIndex)
		announce(lc.Hub, event, game)
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed, "game": game})
}

// StartGameHandler opens round 0 and marks the game running.
func (lc *LifecycleController) StartGameHandler(c *gin.Context) {
	lc.transition(c, "game_started", engine.StartGame)
}

// NextRoundHandler advances to the next round and rescores every team.
func (lc *LifecycleController) NextRoundHandler(c *gin.Context) {
	lc.transition(c, "round_advanced", engine.NextRound)
}

// PreviousRoundHandler steps back one round, reopening it for selection.
func (lc *LifecycleController) PreviousRoundHandler(c *gin.Context) {
	lc.transition(c, "round_reverted", engine.PreviousRound)
}

// StopGameHandler finishes the game at the current round.
func (lc *LifecycleController) StopGameHandler(c *gin.Context) {
	lc.transition(c, "game_stopped", engine.StopGame)
}
