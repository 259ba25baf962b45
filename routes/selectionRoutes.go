package routes

import (
	"github.com/gin-gonic/gin"

	"boardroom-sim/controllers"
)

func SelectionRoutes(r *gin.Engine, sc *controllers.SelectionController) {
	r.PUT("/api/games/:id/teams/:teamId/rounds/:roundId/choice", sc.SelectChoiceHandler)
	r.POST("/api/games/:id/teams/:teamId/rounds/:roundId/save", sc.SaveChoiceHandler)
}
