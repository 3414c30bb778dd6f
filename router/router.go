package router

import (
	"log"

	"torneio/config"
	"torneio/controllers"
	"torneio/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Páginas estáticas: formulário público e painel administrativo
	r.StaticFile("/", "./static/index.html")
	r.StaticFile("/admin", "./static/admin.html")

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/inscrever", Logger(), controllers.Inscrever)
	api.GET("/inscritos", Logger(), controllers.ListarInscritos)
	api.GET("/estatisticas", Logger(), controllers.ObterEstatisticas)
	api.GET("/exportar-excel", Logger(), controllers.ExportarExcel)

	log.Printf("Routes initialized")
}
