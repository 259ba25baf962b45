package websocket

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"boardroom-sim/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for simplicity; adjust in production
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs subscribes a client to one game's broadcasts and pushes the current
// snapshot so the client can render immediately instead of polling.
func ServeWs(h *models.Hub, games *mongo.Collection, w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "game parameter is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var game models.Game
	if err := games.FindOne(ctx, bson.M{"id": gameID}).Decode(&game); err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load game", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	client := &models.Client{Conn: conn, GameID: gameID, Send: make(chan models.WSMessage, 256)}
	h.Register <- client

	go client.WritePump()
	go client.ReadPump(h)

	client.Send <- models.WSMessage{Event: "game_state", Game: gameID, Data: game}
}
