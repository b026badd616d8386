package player

import (
	"gorm.io/gorm"

	"github.com/Vacilotto/fab-rs-elo/internal/rating"
)

// Player represents a ranked competitor in the regional ladder.
type Player struct {
	gorm.Model
	Name       string  `json:"name" gorm:"unique;not null"`
	CurrentElo float64 `json:"current_elo" gorm:"not null;default:1500"`
}

// BeforeCreate seeds a first-time player at the baseline rating.
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.CurrentElo == 0 {
		p.CurrentElo = rating.BaselineRating
	}
	return nil
}
