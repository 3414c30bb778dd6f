package main

import (
	"log"
	"os"
	"strings"

	"torneio/config"
	"torneio/controllers"
	dbpkg "torneio/db"
	"torneio/router"

	"github.com/gin-gonic/gin"
)

// =====================
// ENV esperadas
// =====================
//
// - CONFIG    (caminho do config.json; default "config.json")
// - PORT      (sobrescreve api_port do config, útil em deploy)
// - GIN_MODE  (release/debug/test)
//
// =====================

func main() {
	cfg := config.Get(getenv("CONFIG", "config.json"))
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.ApiPort = port
	}

	dbpkg.SetConfigurations(cfg)
	controllers.SetConfigurations(cfg)

	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatalf("Erro ao conectar no banco: %v", err)
	}
	defer database.Close()

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("Torneio API listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}

// =====================
// Helpers
// =====================
func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
