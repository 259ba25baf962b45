// controllers/reportController.go
package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"boardroom-sim/engine"
	"boardroom-sim/models"
)

// ReportController serves read-only views: the score-over-time table and the
// invite QR. Reads never block on writers; they work off the latest snapshot.
type ReportController struct {
	Store *GameStore
}

func NewReportController(store *GameStore) *ReportController {
	return &ReportController{Store: store}
}

// ScoreSeriesHandler replays the scoring function once per round index
// 0..currentRoundIndex and returns the resulting table.
func (rc *ReportController) ScoreSeriesHandler(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	game, err := rc.Store.Load(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	series := engine.ScoreSeries(game.Teams, game.Rounds, game.CurrentRoundIndex, game.Baseline)
	rows := make([]gin.H, len(series))
	for k, snapshot := range series {
		scores := make(map[string]models.ScoreVector, len(snapshot))
		for _, team := range snapshot {
			scores[team.ID] = team.Score
		}
		rows[k] = gin.H{"roundIndex": k, "scores": scores}
	}
	c.JSON(http.StatusOK, gin.H{"game": game.ID, "series": rows})
}

// InviteQRHandler renders the game's join URL as a QR PNG.
func (rc *ReportController) InviteQRHandler(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c)
	defer cancel()

	game, err := rc.Store.Load(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:5000"
	}
	joinURL := fmt.Sprintf("%s/join/%s", base, game.InviteKey)

	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to render QR: %v", err)})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
