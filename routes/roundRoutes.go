package routes

import (
	"github.com/gin-gonic/gin"

	"boardroom-sim/controllers"
)

func RoundRoutes(r *gin.Engine, rc *controllers.RoundController) {
	r.POST("/api/games/:id/rounds", rc.AddRoundHandler)
	r.DELETE("/api/games/:id/rounds/:roundId", rc.RemoveRoundHandler)
	r.POST("/api/games/:id/rounds/:roundId/choices", rc.AddChoiceHandler)
	r.DELETE("/api/games/:id/rounds/:roundId/choices/:choiceId", rc.RemoveChoiceHandler)
	r.POST("/api/games/:id/rounds/:roundId/choices/:choiceId/effects", rc.AddEffectHandler)
	r.DELETE("/api/games/:id/rounds/:roundId/choices/:choiceId/effects/:effectIndex", rc.RemoveEffectHandler)
}
