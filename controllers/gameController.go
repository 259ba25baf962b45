// controllers/gameController.go
package controllers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"boardroom-sim/engine"
	"boardroom-sim/models"
)

// GameController owns the game CRUD surface: create/list/fetch/delete plus
// joining a game through its invite key.
type GameController struct {
	Store *GameStore
	Hub   *models.Hub
}

func NewGameController(store *GameStore, hub *models.Hub) *GameController {
	return &GameController{Store: store, Hub: hub}
}

// GenerateInviteKey returns a 6-character join code.
func GenerateInviteKey() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

// CreateGameRequest is the editor payload: scenario content without any ids
// or run state, which the server assigns.
type CreateGameRequest struct {
	Name     string             `json:"name"`
	Baseline models.ScoreVector `json:"baseline"`
	Rounds   []models.Round     `json:"rounds"`
}

// CreateGameHandler builds a fresh game from the scenario payload. Ids are
// assigned server-side and all run state starts cleared.
func (gc *GameController) CreateGameHandler(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game payload: " + err.Error()})
		return
	}

	inviteKey, err := GenerateInviteKey()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate invite key"})
		return
	}

	game := models.Game{
		ID:        uuid.NewString(),
		Name:      req.Name,
		InviteKey: inviteKey,
		Baseline:  req.Baseline,
		Rounds:    req.Rounds,
		Teams:     []models.Team{},
	}
	for i := range game.Rounds {
		round := &game.Rounds[i]
		round.ID = uuid.NewString()
		round.Index = i
		round.StartedAt = nil
		round.FinishedAt = nil
		for j := range round.Choices {
			round.Choices[j].ID = uuid.NewString()
			round.Choices[j].RoundID = round.ID
		}
	}

	ctx, cancel := contextWithTimeout(c)
	defer cancel()
	if _, err := gc.Store.Games.InsertOne(ctx, game); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to create game: %v", err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "game created", "game": game})
}

// GetGameHandler returns the full snapshot.
func (gc *GameController) GetGameHandler(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	game, err := gc.Store.Load(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// ListGamesHandler returns every game snapshot.
func (gc *GameController) ListGamesHandler(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	cursor, err := gc.Store.Games.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to fetch games: %v", err)})
		return
	}
	defer cursor.Close(ctx)

	games := []models.Game{}
	for cursor.Next(ctx) {
		var game models.Game
		if err := cursor.Decode(&game); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode game"})
			return
		}
		games = append(games, game)
	}
	if err := cursor.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("cursor error: %v", err)})
		return
	}

	c.JSON(http.StatusOK, games)
}

// DeleteGameHandler removes a game entirely.
func (gc *GameController) DeleteGameHandler(c *gin.Context) {
	gameID := c.Param("id")
	if gameID == "" {
		respondError(c, engine.ErrMissingID)
		return
	}

	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	result, err := gc.Store.Games.DeleteOne(ctx, bson.M{"id": gameID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to delete game: %v", err)})
		return
	}
	if result.DeletedCount == 0 {
		respondError(c, engine.ErrGameNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "game deleted"})
}

// ResolveInviteHandler maps an invite key to its game snapshot so a team
// client can find the game it was handed a code for.
func (gc *GameController) ResolveInviteHandler(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		respondError(c, engine.ErrMissingID)
		return
	}

	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	var game models.Game
	if err := gc.Store.Games.FindOne(ctx, bson.M{"inviteKey": key}).Decode(&game); err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(c, engine.ErrGameNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to fetch game: %v", err)})
		return
	}
	c.JSON(http.StatusOK, game)
}

// JoinGameHandler creates a team in the game. Joining stays open while the
// game runs; only the name is required.
func (gc *GameController) JoinGameHandler(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team name is required"})
		return
	}

	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	team := models.Team{ID: uuid.NewString(), Name: req.Name, Choices: []models.TeamChoice{}}
	game, _, err := gc.Store.Mutate(ctx, c.Param("id"), func(g *models.Game) (bool, error) {
		team.Score = g.Baseline
		g.Teams = append(g.Teams, team)
		return true, nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	announce(gc.Hub, "team_joined", game)
	c.JSON(http.StatusCreated, gin.H{"message": "team joined", "team": team, "game": game})
}

// RenameTeamHandler changes a team's name. Allowed while the game runs.
func (gc *GameController) RenameTeamHandler(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team name is required"})
		return
	}

	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	teamID := c.Param("teamId")
	game, changed, err := gc.Store.Mutate(ctx, c.Param("id"), func(g *models.Game) (bool, error) {
		return engine.RenameTeam(g, teamID, req.Name)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if changed {
		announce(gc.Hub, "game_updated", game)
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed, "team": game.TeamByID(teamID)})
}

// RemoveTeamHandler drops a team from a game that is not running.
func (gc *GameController) RemoveTeamHandler(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	teamID := c.Param("teamId")
	game, changed, err := gc.Store.Mutate(ctx, c.Param("id"), func(g *models.Game) (bool, error) {
		if g.Running() {
			return false, nil
		}
		for i := range g.Teams {
			if g.Teams[i].ID == teamID {
				g.Teams = append(g.Teams[:i], g.Teams[i+1:]...)
				return true, nil
			}
		}
		return false, engine.ErrTeamNotFound
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if changed {
		announce(gc.Hub, "game_updated", game)
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed, "game": game})
}
