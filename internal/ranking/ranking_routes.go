package ranking

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRankingRoutes(router *gin.RouterGroup, db *gorm.DB) {
	rankingRepo := NewRankingRepository(db)
	rankingController := NewRankingController(rankingRepo)

	rankings := router.Group("/rankings")
	{
		rankings.GET("", rankingController.GetRankings)
		rankings.GET("/heroes", rankingController.GetRankingsWithHeroAffinity)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/reset", rankingController.ResetAll)
	}
}
