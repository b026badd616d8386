package hero

import (
	"gorm.io/gorm"
)

// Hero represents a playable hero (the deck a player piloted in a match).
type Hero struct {
	gorm.Model
	Name  string `json:"name" gorm:"unique;not null"`
	Class string `json:"class"`
}

// TableName pins the table to "heroes"; gorm's default pluralization
// yields "heros", which the affinity join also has to name.
func (Hero) TableName() string {
	return "heroes"
}
