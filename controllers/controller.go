package controllers

import (
	"torneio/config"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// RespondError devolve o erro no formato do contrato da API: {"erro": msg}.
func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"erro": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}
