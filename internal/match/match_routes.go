package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vacilotto/fab-rs-elo/config"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	ledger := NewLedger(db, appConfig.Elo.KFactor)
	matchController := NewMatchController(ledger)

	matches := router.Group("/matches")
	{
		matches.POST("", matchController.RecordMatch)
	}

	router.GET("/players/:player_id/history", matchController.GetPlayerHistory)
}
