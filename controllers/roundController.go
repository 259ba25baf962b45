// controllers/roundController.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"boardroom-sim/engine"
	"boardroom-sim/models"
)

// RoundController is the scenario editor surface: structural edits to the
// round list and its choices. All of it is editor-time only; the engine
// refuses structural changes while the game runs.
type RoundController struct {
	Store *GameStore
	Hub   *models.Hub
}

func NewRoundController(store *GameStore, hub *models.Hub) *RoundController {
	return &RoundController{Store: store, Hub: hub}
}

func (rc *RoundController) edit(c *gin.Context, fn func(*models.Game) (bool, error)) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	game, changed, err := rc.Store.Mutate(ctx, c.Param("id"), fn)
	if err != nil {
		respondError(c, err)
		return
	}
	if changed {
		announce(rc.Hub, "game_updated", game)
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed, "game": game})
}

// AddRoundHandler appends a round built from the editor payload.
func (rc *RoundController) AddRoundHandler(c *gin.Context) {
	var round models.Round
	if err := c.ShouldBindJSON(&round); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round payload: " + err.Error()})
		return
	}
	round.ID = uuid.NewString()
	for i := range round.Choices {
		round.Choices[i].ID = uuid.NewString()
		round.Choices[i].RoundID = round.ID
	}
	rc.edit(c, func(g *models.Game) (bool, error) {
		return engine.AddRound(g, round), nil
	})
}

// RemoveRoundHandler deletes a round by id.
func (rc *RoundController) RemoveRoundHandler(c *gin.Context) {
	roundID := c.Param("roundId")
	rc.edit(c, func(g *models.Game) (bool, error) {
		if g.Running() {
			return false, nil
		}
		if g.RoundByID(roundID) == nil {
			return false, engine.ErrRoundNotFound
		}
		return engine.RemoveRound(g, roundID), nil
	})
}

// AddChoiceHandler adds a choice (with its effects and reveals) to a round.
func (rc *RoundController) AddChoiceHandler(c *gin.Context) {
	var choice models.Choice
	if err := c.ShouldBindJSON(&choice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid choice payload: " + err.Error()})
		return
	}
	roundID := c.Param("roundId")
	rc.edit(c, func(g *models.Game) (bool, error) {
		if g.Running() {
			return false, nil
		}
		round := g.RoundByID(roundID)
		if round == nil {
			return false, engine.ErrRoundNotFound
		}
		choice.ID = uuid.NewString()
		choice.RoundID = round.ID
		round.Choices = append(round.Choices, choice)
		return true, nil
	})
}

// AddEffectHandler appends an interaction effect to a choice.
func (rc *RoundController) AddEffectHandler(c *gin.Context) {
	var effect models.InteractionEffect
	if err := c.ShouldBindJSON(&effect); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid effect payload: " + err.Error()})
		return
	}
	roundID := c.Param("roundId")
	choiceID := c.Param("choiceId")
	rc.edit(c, func(g *models.Game) (bool, error) {
		return engine.AddChoiceEffect(g, roundID, choiceID, effect)
	})
}

// RemoveEffectHandler deletes an interaction effect by its position in the
// choice's effect list.
func (rc *RoundController) RemoveEffectHandler(c *gin.Context) {
	effectIndex, err := strconv.Atoi(c.Param("effectIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "effect index must be a number"})
		return
	}
	roundID := c.Param("roundId")
	choiceID := c.Param("choiceId")
	rc.edit(c, func(g *models.Game) (bool, error) {
		return engine.RemoveChoiceEffect(g, roundID, choiceID, effectIndex)
	})
}

// RemoveChoiceHandler deletes a choice from a round.
func (rc *RoundController) RemoveChoiceHandler(c *gin.Context) {
	roundID := c.Param("roundId")
	choiceID := c.Param("choiceId")
	rc.edit(c, func(g *models.Game) (bool, error) {
		if g.Running() {
			return false, nil
		}
		round := g.RoundByID(roundID)
		if round == nil {
			return false, engine.ErrRoundNotFound
		}
		for i := range round.Choices {
			if round.Choices[i].ID == choiceID {
				round.Choices = append(round.Choices[:i], round.Choices[i+1:]...)
				return true, nil
			}
		}
		return false, engine.ErrChoiceNotFound
	})
}
