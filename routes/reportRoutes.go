package routes

import (
	"github.com/gin-gonic/gin"

	"boardroom-sim/controllers"
)

func ReportRoutes(r *gin.Engine, rc *controllers.ReportController) {
	r.GET("/api/games/:id/scores", rc.ScoreSeriesHandler)
	r.GET("/api/games/:id/qr", rc.InviteQRHandler)
}
