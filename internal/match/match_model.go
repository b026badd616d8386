package match

import (
	"gorm.io/gorm"

	"github.com/Vacilotto/fab-rs-elo/internal/hero"
	"github.com/Vacilotto/fab-rs-elo/internal/player"
	"github.com/Vacilotto/fab-rs-elo/internal/tournament"
)

// Match is one recorded pairing. WinnerID nil means a draw (or a result
// that never came in). Rows are immutable once written: ratings are never
// recomputed by editing history.
type Match struct {
	gorm.Model
	TournamentID uint                  `json:"tournament_id" gorm:"index;not null"`
	Tournament   tournament.Tournament `json:"-" gorm:"foreignKey:TournamentID"`

	Player1ID uint          `json:"player1_id" gorm:"index;not null"`
	Player1   player.Player `json:"-" gorm:"foreignKey:Player1ID"`
	Player2ID uint          `json:"player2_id" gorm:"index;not null"`
	Player2   player.Player `json:"-" gorm:"foreignKey:Player2ID"`

	Player1HeroID uint      `json:"player1_hero_id" gorm:"not null"`
	Player1Hero   hero.Hero `json:"-" gorm:"foreignKey:Player1HeroID"`
	Player2HeroID uint      `json:"player2_hero_id" gorm:"not null"`
	Player2Hero   hero.Hero `json:"-" gorm:"foreignKey:Player2HeroID"`

	WinnerID *uint `json:"winner_id" gorm:"index"`

	// EloChange is the signed delta applied to player 1; player 2 received
	// the exact opposite.
	EloChange float64 `json:"elo_change" gorm:"not null"`
}

// EloHistory links a player to a match and the rating they held right
// after it. Append-only, one row per (player, match).
type EloHistory struct {
	gorm.Model
	PlayerID uint          `json:"player_id" gorm:"index;not null"`
	Player   player.Player `json:"-" gorm:"foreignKey:PlayerID"`
	MatchID  uint          `json:"match_id" gorm:"index;not null"`
	Match    Match         `json:"-" gorm:"foreignKey:MatchID"`
	EloAfter float64       `json:"elo_after" gorm:"not null"`
}
