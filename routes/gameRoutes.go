package routes

import (
	"github.com/gin-gonic/gin"

	"boardroom-sim/controllers"
)

func GameRoutes(r *gin.Engine, gc *controllers.GameController, lc *controllers.LifecycleController) {
	r.POST("/api/games", gc.CreateGameHandler)
	r.GET("/api/games", gc.ListGamesHandler)
	r.GET("/api/games/:id", gc.GetGameHandler)
	r.DELETE("/api/games/:id", gc.DeleteGameHandler)

	r.GET("/api/invites/:key", gc.ResolveInviteHandler)
	r.POST("/api/games/:id/teams", gc.JoinGameHandler)
	r.PATCH("/api/games/:id/teams/:teamId", gc.RenameTeamHandler)
	r.DELETE("/api/games/:id/teams/:teamId", gc.RemoveTeamHandler)

	r.POST("/api/games/:id/start", lc.StartGameHandler)
	r.POST("/api/games/:id/next", lc.NextRoundHandler)
	r.POST("/api/games/:id/previous", lc.PreviousRoundHandler)
	r.POST("/api/games/:id/stop", lc.StopGameHandler)
}
