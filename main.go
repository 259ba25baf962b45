package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"boardroom-sim/controllers"
	"boardroom-sim/db"
	"boardroom-sim/models"
	"boardroom-sim/routes"
)

func main() {
	godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI not set")
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, uri)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Println("MongoDB disconnect failed:", err)
		}
	}()
	log.Println("Connected to MongoDB!")

	games := db.Games(client)
	store := controllers.NewGameStore(client, games)

	hub := models.NewHub()
	go hub.Run()

	gameController := controllers.NewGameController(store, hub)
	lifecycleController := controllers.NewLifecycleController(store, hub)
	selectionController := controllers.NewSelectionController(store, hub)
	roundController := controllers.NewRoundController(store, hub)
	reportController := controllers.NewReportController(store)

	r := gin.Default()
	r.Use(cors.Default())

	routes.GameRoutes(r, gameController, lifecycleController)
	routes.RoundRoutes(r, roundController)
	routes.SelectionRoutes(r, selectionController)
	routes.ReportRoutes(r, reportController)
	routes.WebSocketRoutes(r, hub, games)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
