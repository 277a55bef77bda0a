package main

import (
	"fmt"
	"log"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/configs"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/middlewares"
	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/routes"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if cfg.SeedDemoData {
		if err := configs.SeedDemoData(); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Carts and liked-dish sets live in this session, nowhere else.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("kitchen_session", store))

	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
