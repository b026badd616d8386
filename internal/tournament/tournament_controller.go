package tournament

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vacilotto/fab-rs-elo/pkg/responses"
	"github.com/Vacilotto/fab-rs-elo/pkg/validator"
)

// TournamentController handles API requests related to tournaments.
type TournamentController struct {
	repo TournamentRepository
}

// NewTournamentController creates a new TournamentController.
func NewTournamentController(repo TournamentRepository) *TournamentController {
	return &TournamentController{repo: repo}
}

type CreateTournamentRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=200"`
	Location string     `json:"location" binding:"omitempty,max=200"`
	Date     *time.Time `json:"date" binding:"omitempty"`
}

// CreateTournament opens a new tournament to record matches under.
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	t := Tournament{Name: req.Name, Location: req.Location}
	if req.Date != nil {
		t.Date = *req.Date
	} else {
		t.Date = time.Now()
	}

	if err := tc.repo.Create(&t); err != nil {
		responses.InternalServerError(c, "Failed to create tournament")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Tournament created", gin.H{
		"id":       t.ID,
		"name":     t.Name,
		"location": t.Location,
		"date":     t.Date,
	})
}
