package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"boardroom-sim/models"
	"boardroom-sim/websocket"
)

func WebSocketRoutes(r *gin.Engine, hub *models.Hub, games *mongo.Collection) {
	r.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(hub, games, c.Writer, c.Request)
	})
}
