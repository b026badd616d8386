package tournament

import (
	"time"

	"gorm.io/gorm"
)

// Tournament groups the matches of a single event (one import session).
type Tournament struct {
	gorm.Model
	Name     string    `json:"name" gorm:"not null"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
}
