package match

import (
	"errors"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Vacilotto/fab-rs-elo/internal/player"
	"github.com/Vacilotto/fab-rs-elo/internal/rating"
)

// ErrInvalidOutcome is returned when a match's winner id does not refer to
// either participant.
var ErrInvalidOutcome = errors.New("winner is not a participant of this match")

// ErrSamePlayer is returned when both participant ids refer to one player.
var ErrSamePlayer = errors.New("a match needs two different players")

// Ledger records match outcomes and keeps player ratings consistent with
// them: every recording writes the match row, both new ratings, and one
// history row per player inside a single transaction.
type Ledger interface {
	// RecordMatch applies one match outcome. winnerID nil means a draw.
	// Returns player.ErrNotFound if either participant is unknown,
	// ErrSamePlayer if both ids name one player, and ErrInvalidOutcome
	// if winnerID names a third party; in every case nothing is written.
	RecordMatch(tournamentID, player1ID, player2ID, player1HeroID, player2HeroID uint, winnerID *uint) (*Match, error)

	// History returns a player's rating trajectory, oldest first.
	History(playerID uint) ([]EloHistory, error)
}

type gormLedger struct {
	db      *gorm.DB
	kFactor float64

	// Serializes recordings. A rating update is read-compute-write; two
	// concurrent recordings touching the same player must not both read
	// the same stale rating. A single-writer queue is plenty at
	// tournament volumes.
	mu sync.Mutex
}

// NewLedger creates a match ledger using the given K-factor.
func NewLedger(db *gorm.DB, kFactor float64) Ledger {
	if kFactor <= 0 {
		kFactor = rating.DefaultKFactor
	}
	return &gormLedger{db: db, kFactor: kFactor}
}

func (l *gormLedger) RecordMatch(tournamentID, player1ID, player2ID, player1HeroID, player2HeroID uint, winnerID *uint) (*Match, error) {
	if player1ID == player2ID {
		return nil, ErrSamePlayer
	}
	if winnerID != nil && *winnerID != player1ID && *winnerID != player2ID {
		return nil, ErrInvalidOutcome
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var recorded *Match
	err := l.withTransaction(func(tx *gorm.DB) error {
		var players []player.Player
		if err := tx.Find(&players, []uint{player1ID, player2ID}).Error; err != nil {
			return pkgerrors.Wrap(err, "unable to load participants")
		}
		if len(players) != 2 {
			return player.ErrNotFound
		}

		p1, p2 := &players[0], &players[1]
		if p1.ID != player1ID {
			p1, p2 = p2, p1
		}

		score1 := rating.ScoreDraw
		if winnerID != nil {
			if *winnerID == player1ID {
				score1 = rating.ScoreWin
			} else {
				score1 = rating.ScoreLoss
			}
		}

		newElo1, newElo2, change := rating.UpdateRatings(p1.CurrentElo, p2.CurrentElo, score1, l.kFactor)

		m := Match{
			TournamentID:  tournamentID,
			Player1ID:     player1ID,
			Player2ID:     player2ID,
			Player1HeroID: player1HeroID,
			Player2HeroID: player2HeroID,
			WinnerID:      winnerID,
			EloChange:     change,
		}
		if err := tx.Create(&m).Error; err != nil {
			return pkgerrors.Wrap(err, "unable to insert match")
		}

		if err := tx.Model(&player.Player{}).Where("id = ?", player1ID).
			Update("current_elo", newElo1).Error; err != nil {
			return pkgerrors.Wrap(err, "unable to update player 1 rating")
		}
		if err := tx.Model(&player.Player{}).Where("id = ?", player2ID).
			Update("current_elo", newElo2).Error; err != nil {
			return pkgerrors.Wrap(err, "unable to update player 2 rating")
		}

		history := []EloHistory{
			{PlayerID: player1ID, MatchID: m.ID, EloAfter: newElo1},
			{PlayerID: player2ID, MatchID: m.ID, EloAfter: newElo2},
		}
		if err := tx.Create(&history).Error; err != nil {
			return pkgerrors.Wrap(err, "unable to append rating history")
		}

		recorded = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}

// withTransaction runs fn inside one transaction; any error rolls the
// whole recording back so no partial state is ever observable.
func (l *gormLedger) withTransaction(fn func(tx *gorm.DB) error) error {
	tx := l.db.Begin()
	if tx.Error != nil {
		return pkgerrors.Wrap(tx.Error, "unable to begin transaction")
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return pkgerrors.Wrap(err, "unable to commit transaction")
	}
	return nil
}

func (l *gormLedger) History(playerID uint) ([]EloHistory, error) {
	var entries []EloHistory
	err := l.db.Where("player_id = ?", playerID).Order("id ASC").Find(&entries).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "unable to load rating history")
	}
	return entries, nil
}
