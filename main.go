package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinicore/backup"
	"clinicore/configuration"
	"clinicore/controllers"
	"clinicore/routes"
	"clinicore/store"
)

func main() {
	cfg := configuration.Load()

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open datastore: %v", err)
	}
	defer s.Close()

	coordinator := backup.NewCoordinator(s)
	handler := controllers.New(s, coordinator, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	routes.ConfigRoutes(router, handler, cfg.JWTSecret)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
