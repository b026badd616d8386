package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo)

	players := router.Group("/players")
	{
		players.POST("", playerController.CreatePlayer)
		players.GET("/:player_id", playerController.GetPlayer)
	}
}
