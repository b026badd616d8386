package ranking

import (
	"sort"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Vacilotto/fab-rs-elo/internal/hero"
	"github.com/Vacilotto/fab-rs-elo/internal/match"
	"github.com/Vacilotto/fab-rs-elo/internal/player"
	"github.com/Vacilotto/fab-rs-elo/internal/tournament"
)

// NoWinsPlaceholder is shown for players who have not won a match yet.
const NoWinsPlaceholder = "No wins yet"

// Ranking is one leaderboard row.
type Ranking struct {
	Name string  `json:"name"`
	Elo  float64 `json:"current_elo"`
}

// HeroAffinityRanking adds each player's most successful hero.
type HeroAffinityRanking struct {
	Name     string  `json:"name"`
	Elo      float64 `json:"current_elo"`
	BestHero string  `json:"best_hero"`
}

type RankingRepository interface {
	// GetRankings returns the standings ordered by rating descending,
	// ties broken by ascending player id so the order is stable.
	GetRankings() ([]Ranking, error)

	// GetRankingsWithHeroAffinity annotates the standings with the hero
	// each player has won the most matches with. Ties between heroes are
	// broken by hero name ascending.
	GetRankingsWithHeroAffinity() ([]HeroAffinityRanking, error)

	// ResetAll wipes every player, hero, tournament, match and history
	// row. Only used by batch re-imports.
	ResetAll() error
}

type rankingRepository struct {
	db *gorm.DB
}

// NewRankingRepository creates a new instance of RankingRepository.
func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

func (r *rankingRepository) GetRankings() ([]Ranking, error) {
	var rankings []Ranking
	err := r.db.Model(&player.Player{}).
		Select("name, current_elo AS elo").
		Order("current_elo DESC, id ASC").
		Scan(&rankings).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "unable to load rankings")
	}
	return rankings, nil
}

// heroWinCount is one group of the wins-per-(player, hero) reduction.
type heroWinCount struct {
	WinnerID uint
	HeroName string
	Wins     int64
}

func (r *rankingRepository) GetRankingsWithHeroAffinity() ([]HeroAffinityRanking, error) {
	var players []player.Player
	err := r.db.Order("current_elo DESC, id ASC").Find(&players).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "unable to load players")
	}

	// Count wins per (winner, hero the winner piloted) in one grouped query.
	var counts []heroWinCount
	err = r.db.Model(&match.Match{}).
		Select("matches.winner_id AS winner_id, heroes.name AS hero_name, COUNT(*) AS wins").
		Joins("JOIN heroes ON heroes.id = CASE WHEN matches.winner_id = matches.player1_id THEN matches.player1_hero_id ELSE matches.player2_hero_id END").
		Where("matches.winner_id IS NOT NULL").
		Group("matches.winner_id, heroes.name").
		Scan(&counts).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "unable to aggregate hero wins")
	}

	// Per player, keep the hero with the most wins; equal counts resolve
	// to the lexicographically smaller name so results are deterministic.
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Wins != counts[j].Wins {
			return counts[i].Wins > counts[j].Wins
		}
		return counts[i].HeroName < counts[j].HeroName
	})
	best := make(map[uint]string, len(players))
	for _, c := range counts {
		if _, seen := best[c.WinnerID]; !seen {
			best[c.WinnerID] = c.HeroName
		}
	}

	rankings := make([]HeroAffinityRanking, 0, len(players))
	for _, p := range players {
		bestHero, ok := best[p.ID]
		if !ok {
			bestHero = NoWinsPlaceholder
		}
		rankings = append(rankings, HeroAffinityRanking{
			Name:     p.Name,
			Elo:      p.CurrentElo,
			BestHero: bestHero,
		})
	}
	return rankings, nil
}

func (r *rankingRepository) ResetAll() error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return pkgerrors.Wrap(tx.Error, "unable to begin transaction")
	}

	for _, model := range []interface{}{
		&match.EloHistory{}, &match.Match{},
		&player.Player{}, &hero.Hero{}, &tournament.Tournament{},
	} {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
		if err := wipe.Delete(model).Error; err != nil {
			tx.Rollback()
			return pkgerrors.Wrap(err, "unable to clear table")
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return pkgerrors.Wrap(err, "unable to commit reset")
	}
	return nil
}
