package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Vacilotto/fab-rs-elo/config"
	"github.com/Vacilotto/fab-rs-elo/internal/hero"
	"github.com/Vacilotto/fab-rs-elo/internal/match"
	"github.com/Vacilotto/fab-rs-elo/internal/player"
	"github.com/Vacilotto/fab-rs-elo/internal/ranking"
	"github.com/Vacilotto/fab-rs-elo/internal/tournament"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	db := config.DB
	appConfig := config.GetConfig()

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>FAB Regional ELO</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>FAB Regional ELO - RS</h1>
					<p><a href="/api/rankings/heroes">Regional rankings</a></p>
				</body>
			</html>
		`))
	})

	// API routes
	api := r.Group("/api")
	player.RegisterPlayerRoutes(api, db)
	hero.RegisterHeroRoutes(api, db)
	tournament.RegisterTournamentRoutes(api, db)
	match.RegisterMatchRoutes(api, db, appConfig)
	ranking.RegisterRankingRoutes(api, db)

	return r
}
