package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vacilotto/fab-rs-elo/pkg/responses"
	"github.com/Vacilotto/fab-rs-elo/pkg/validator"
)

// PlayerController handles API requests related to players.
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new PlayerController.
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreatePlayer registers a player by name. Creation is idempotent: posting
// an existing name returns the existing player's id.
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	p, err := pc.repo.FindOrCreateByName(req.Name)
	if err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Player ready", gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"current_elo": p.CurrentElo,
	})
}

// GetPlayer returns a single player by id.
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID format")
		return
	}

	p, err := pc.repo.GetByID(uint(id))
	if err != nil {
		if err == ErrNotFound {
			responses.NotFound(c, "Player")
			return
		}
		responses.InternalServerError(c, "Failed to load player")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", p)
}
