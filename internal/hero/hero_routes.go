package hero

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterHeroRoutes(router *gin.RouterGroup, db *gorm.DB) {
	heroRepo := NewHeroRepository(db)
	heroController := NewHeroController(heroRepo)

	heroes := router.Group("/heroes")
	{
		heroes.POST("", heroController.CreateHero)
	}
}
