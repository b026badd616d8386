package ranking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vacilotto/fab-rs-elo/pkg/responses"
)

// RankingController handles leaderboard HTTP requests.
type RankingController struct {
	repo RankingRepository
}

// NewRankingController creates a new RankingController.
func NewRankingController(repo RankingRepository) *RankingController {
	return &RankingController{repo: repo}
}

// GetRankings returns the current standings. Pass ?page=N&page_size=M to
// page through a large ladder; without a page param the full list comes
// back in one response.
func (rc *RankingController) GetRankings(c *gin.Context) {
	rankings, err := rc.repo.GetRankings()
	if err != nil {
		responses.InternalServerError(c, "Failed to load rankings")
		return
	}

	pageStr := c.Query("page")
	if pageStr == "" {
		responses.SendSuccess(c, http.StatusOK, "", rankings)
		return
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		responses.BadRequest(c, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if err != nil || pageSize < 1 {
		responses.BadRequest(c, "Invalid page size")
		return
	}

	total := int64(len(rankings))
	start := (page - 1) * pageSize
	if start > len(rankings) {
		start = len(rankings)
	}
	end := start + pageSize
	if end > len(rankings) {
		end = len(rankings)
	}

	responses.SendPaginated(c, http.StatusOK, "", rankings[start:end], total, page, pageSize)
}

// GetRankingsWithHeroAffinity returns the standings annotated with each
// player's most successful hero.
func (rc *RankingController) GetRankingsWithHeroAffinity(c *gin.Context) {
	rankings, err := rc.repo.GetRankingsWithHeroAffinity()
	if err != nil {
		responses.InternalServerError(c, "Failed to load rankings")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", rankings)
}

// ResetAll wipes every record ahead of a batch re-import.
func (rc *RankingController) ResetAll(c *gin.Context) {
	if err := rc.repo.ResetAll(); err != nil {
		responses.InternalServerError(c, "Failed to reset data")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "All data cleared", nil)
}
