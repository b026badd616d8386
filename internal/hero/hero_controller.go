package hero

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vacilotto/fab-rs-elo/pkg/responses"
	"github.com/Vacilotto/fab-rs-elo/pkg/validator"
)

// HeroController handles API requests related to heroes.
type HeroController struct {
	repo HeroRepository
}

// NewHeroController creates a new HeroController.
func NewHeroController(repo HeroRepository) *HeroController {
	return &HeroController{repo: repo}
}

type CreateHeroRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Class string `json:"class" binding:"omitempty,max=100"`
}

// CreateHero registers a hero by name, idempotently.
func (hc *HeroController) CreateHero(c *gin.Context) {
	var req CreateHeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	h, err := hc.repo.FindOrCreateByName(req.Name, req.Class)
	if err != nil {
		responses.InternalServerError(c, "Failed to create hero")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Hero ready", gin.H{
		"id":    h.ID,
		"name":  h.Name,
		"class": h.Class,
	})
}
