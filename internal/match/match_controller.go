package match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Vacilotto/fab-rs-elo/internal/player"
	"github.com/Vacilotto/fab-rs-elo/pkg/responses"
	"github.com/Vacilotto/fab-rs-elo/pkg/validator"
)

// MatchController handles match-related HTTP requests.
type MatchController struct {
	ledger Ledger
}

// NewMatchController creates a new match controller.
func NewMatchController(ledger Ledger) *MatchController {
	return &MatchController{ledger: ledger}
}

type RecordMatchRequest struct {
	TournamentID  uint  `json:"tournament_id" binding:"required"`
	Player1ID     uint  `json:"player1_id" binding:"required"`
	Player2ID     uint  `json:"player2_id" binding:"required,nefield=Player1ID"`
	Player1HeroID uint  `json:"player1_hero_id" binding:"required"`
	Player2HeroID uint  `json:"player2_hero_id" binding:"required"`
	WinnerID      *uint `json:"winner_id" binding:"omitempty"`
}

// RecordMatch records one match outcome and updates both ratings.
func (mc *MatchController) RecordMatch(c *gin.Context) {
	var req RecordMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	m, err := mc.ledger.RecordMatch(
		req.TournamentID,
		req.Player1ID, req.Player2ID,
		req.Player1HeroID, req.Player2HeroID,
		req.WinnerID,
	)
	if err != nil {
		switch {
		case errors.Is(err, player.ErrNotFound):
			responses.NotFound(c, "Player")
		case errors.Is(err, ErrSamePlayer):
			responses.BadRequest(c, "A match needs two different players")
		case errors.Is(err, ErrInvalidOutcome):
			responses.BadRequest(c, "Winner must be one of the two participants")
		default:
			responses.InternalServerError(c, "Failed to record match")
		}
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Match recorded", m)
}

// GetPlayerHistory returns a player's rating trajectory, oldest first.
func (mc *MatchController) GetPlayerHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID format")
		return
	}

	entries, err := mc.ledger.History(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to load rating history")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", entries)
}
