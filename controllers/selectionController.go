// controllers/selectionController.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardroom-sim/engine"
	"boardroom-sim/models"
)

// SelectionController is the team-facing write path. It runs independently of
// the lifecycle controller but through the same transactional store, so a
// team's selection can never be clobbered by a concurrent full-document
// write. The saved lock is re-checked against the persisted value inside the
// transaction, never trusted from the client.
type SelectionController struct {
	Store *GameStore
	Hub   *models.Hub
}

func NewSelectionController(store *GameStore, hub *models.Hub) *SelectionController {
	return &SelectionController{Store: store, Hub: hub}
}

// SelectChoiceHandler records or replaces the team's selection for a round.
// A locked entry answers 200 with changed=false; the UI disables the control
// but the server is the one that enforces it.
func (sc *SelectionController) SelectChoiceHandler(c *gin.Context) {
	var req struct {
		ChoiceID string `json:"choiceId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection payload: " + err.Error()})
		return
	}

	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	teamID := c.Param("teamId")
	roundID := c.Param("roundId")
	game, changed, err := sc.Store.Mutate(ctx, c.Param("id"), func(g *models.Game) (bool, error) {
		return engine.SelectChoice(g, teamID, roundID, req.ChoiceID)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if changed {
		announce(sc.Hub, "choice_selected", game)
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed, "team": game.TeamByID(teamID)})
}

// SaveChoiceHandler locks in the team's selection for a round.
func (sc *SelectionController) SaveChoiceHandler(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	teamID := c.Param("teamId")
	roundID := c.Param("roundId")
	game, changed, err := sc.Store.Mutate(ctx, c.Param("id"), func(g *models.Game) (bool, error) {
		return engine.SaveChoice(g, teamID, roundID)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if changed {
		announce(sc.Hub, "choice_saved", game)
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed, "team": game.TeamByID(teamID)})
}
