package importer

import (
	"encoding/json"
	"log"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Vacilotto/fab-rs-elo/internal/hero"
	"github.com/Vacilotto/fab-rs-elo/internal/match"
	"github.com/Vacilotto/fab-rs-elo/internal/player"
	"github.com/Vacilotto/fab-rs-elo/internal/ranking"
	"github.com/Vacilotto/fab-rs-elo/internal/tournament"
)

// byeMarker is how the pairing software reports an unpaired player.
const byeMarker = "BYE"

// Round is one tournament round as exported by the pairing software.
type Round struct {
	Round   int          `json:"round"`
	Matches []RoundMatch `json:"matches"`
}

// RoundMatch pairs two players by name with the decks they piloted.
// Winner is the winning player's name, absent for a draw.
type RoundMatch struct {
	Player1     string `json:"p1"`
	Player2     string `json:"p2"`
	Player1Deck string `json:"p1_deck"`
	Player2Deck string `json:"p2_deck"`
	Winner      string `json:"winner"`
}

// Importer replays a tournament export into the ledger, creating players
// and heroes on first sight.
type Importer struct {
	players     player.PlayerRepository
	heroes      hero.HeroRepository
	tournaments tournament.TournamentRepository
	rankings    ranking.RankingRepository
	ledger      match.Ledger
}

// New wires an Importer over the given database and K-factor.
func New(db *gorm.DB, kFactor float64) *Importer {
	return &Importer{
		players:     player.NewPlayerRepository(db),
		heroes:      hero.NewHeroRepository(db),
		tournaments: tournament.NewTournamentRepository(db),
		rankings:    ranking.NewRankingRepository(db),
		ledger:      match.NewLedger(db, kFactor),
	}
}

// ImportFile clears all existing data and replays the rounds in the given
// JSON file under a freshly created tournament. Rounds are processed
// strictly in order: each result's rating math depends on the results
// before it.
func (i *Importer) ImportFile(path, tournamentName, location string) (*tournament.Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "unable to read tournament file")
	}

	var rounds []Round
	if err := json.Unmarshal(data, &rounds); err != nil {
		return nil, pkgerrors.Wrap(err, "unable to parse tournament file")
	}

	log.Println("Clearing existing data...")
	if err := i.rankings.ResetAll(); err != nil {
		return nil, err
	}

	t := &tournament.Tournament{Name: tournamentName, Location: location, Date: time.Now()}
	if err := i.tournaments.Create(t); err != nil {
		return nil, pkgerrors.Wrap(err, "unable to create tournament")
	}

	for _, round := range rounds {
		log.Printf("Processing round %d...", round.Round)
		for _, rm := range round.Matches {
			if rm.Player1 == byeMarker || rm.Player2 == byeMarker {
				log.Printf("Skipping BYE match in round %d", round.Round)
				continue
			}
			if err := i.importMatch(t.ID, rm); err != nil {
				return nil, pkgerrors.Wrapf(err, "round %d: %s vs %s", round.Round, rm.Player1, rm.Player2)
			}
		}
	}

	return t, nil
}

func (i *Importer) importMatch(tournamentID uint, rm RoundMatch) error {
	p1, err := i.players.FindOrCreateByName(rm.Player1)
	if err != nil {
		return err
	}
	p2, err := i.players.FindOrCreateByName(rm.Player2)
	if err != nil {
		return err
	}

	h1, err := i.heroes.FindOrCreateByName(rm.Player1Deck, "")
	if err != nil {
		return err
	}
	h2, err := i.heroes.FindOrCreateByName(rm.Player2Deck, "")
	if err != nil {
		return err
	}

	// Winner names that match neither player (or are empty) count as a
	// draw; the ledger only ever sees participant ids.
	var winnerID *uint
	switch rm.Winner {
	case rm.Player1:
		winnerID = &p1.ID
	case rm.Player2:
		winnerID = &p2.ID
	}

	_, err = i.ledger.RecordMatch(tournamentID, p1.ID, p2.ID, h1.ID, h2.ID, winnerID)
	return err
}
