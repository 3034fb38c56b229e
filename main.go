package main

import (
	"fmt"
	"os"

	"github.com/RodriLang/food-ordering-API-sub001/configs"
	"github.com/RodriLang/food-ordering-API-sub001/middlewares"
	"github.com/RodriLang/food-ordering-API-sub001/pkg/logger"
	"github.com/RodriLang/food-ordering-API-sub001/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New("ordering-api")

	db, err := configs.OpenDB(cfg.DBSource)
	if err != nil {
		log.Error("connect database failed", "error", err)
		os.Exit(1)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Error("migrate failed", "error", err)
		os.Exit(1)
	}
	if err := configs.SeedDemo(db); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
