package match

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vacilotto/fab-rs-elo/internal/hero"
	"github.com/Vacilotto/fab-rs-elo/internal/player"
	"github.com/Vacilotto/fab-rs-elo/internal/rating"
	"github.com/Vacilotto/fab-rs-elo/internal/tournament"
)

type fixture struct {
	db     *gorm.DB
	ledger Ledger

	tournamentID uint
	heroID       uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: connection would open a fresh empty database per
	// connection; pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&player.Player{}, &hero.Hero{}, &tournament.Tournament{},
		&Match{}, &EloHistory{},
	))

	tr := tournament.Tournament{Name: "Test Regional"}
	require.NoError(t, db.Create(&tr).Error)

	h := hero.Hero{Name: "Kayo", Class: "Brute"}
	require.NoError(t, db.Create(&h).Error)

	return &fixture{
		db:           db,
		ledger:       NewLedger(db, rating.DefaultKFactor),
		tournamentID: tr.ID,
		heroID:       h.ID,
	}
}

func (f *fixture) addPlayer(t *testing.T, name string, elo float64) uint {
	t.Helper()
	p := player.Player{Name: name, CurrentElo: elo}
	require.NoError(t, f.db.Create(&p).Error)
	return p.ID
}

func (f *fixture) playerElo(t *testing.T, id uint) float64 {
	t.Helper()
	var p player.Player
	require.NoError(t, f.db.First(&p, id).Error)
	return p.CurrentElo
}

func TestRecordMatchWin(t *testing.T) {
	f := newFixture(t)
	p1 := f.addPlayer(t, "Guga", 1500)
	p2 := f.addPlayer(t, "Felipe", 1500)

	m, err := f.ledger.RecordMatch(f.tournamentID, p1, p2, f.heroID, f.heroID, &p1)
	require.NoError(t, err)

	assert.InDelta(t, 16, m.EloChange, 1e-9)
	assert.InDelta(t, 1516, f.playerElo(t, p1), 1e-9)
	assert.InDelta(t, 1484, f.playerElo(t, p2), 1e-9)
}

func TestRecordMatchDrawBetweenEquals(t *testing.T) {
	f := newFixture(t)
	p1 := f.addPlayer(t, "Guga", 1500)
	p2 := f.addPlayer(t, "Felipe", 1500)

	m, err := f.ledger.RecordMatch(f.tournamentID, p1, p2, f.heroID, f.heroID, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0, m.EloChange, 1e-9)
	assert.InDelta(t, 1500, f.playerElo(t, p1), 1e-9)
	assert.InDelta(t, 1500, f.playerElo(t, p2), 1e-9)
}

func TestRecordMatchUpsetIsZeroSum(t *testing.T) {
	f := newFixture(t)
	favourite := f.addPlayer(t, "Guga", 1800)
	underdog := f.addPlayer(t, "Felipe", 1400)

	_, err := f.ledger.RecordMatch(f.tournamentID, favourite, underdog, f.heroID, f.heroID, &underdog)
	require.NoError(t, err)

	assert.Less(t, f.playerElo(t, favourite), 1800.0)
	assert.Greater(t, f.playerElo(t, underdog), 1400.0)
	assert.InDelta(t, 3200, f.playerElo(t, favourite)+f.playerElo(t, underdog), 1e-9)
}

func TestRecordMatchAppendsHistory(t *testing.T) {
	f := newFixture(t)
	p1 := f.addPlayer(t, "Guga", 1500)
	p2 := f.addPlayer(t, "Felipe", 1500)

	m1, err := f.ledger.RecordMatch(f.tournamentID, p1, p2, f.heroID, f.heroID, &p1)
	require.NoError(t, err)
	m2, err := f.ledger.RecordMatch(f.tournamentID, p1, p2, f.heroID, f.heroID, &p1)
	require.NoError(t, err)

	entries, err := f.ledger.History(p1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, m1.ID, entries[0].MatchID)
	assert.Equal(t, m2.ID, entries[1].MatchID)

	// Current rating always matches the latest history row.
	assert.InDelta(t, f.playerElo(t, p1), entries[1].EloAfter, 1e-9)

	// The second win against a now weaker opponent moves fewer points.
	assert.Less(t, m2.EloChange, m1.EloChange)
}

func TestRecordMatchUnknownPlayerWritesNothing(t *testing.T) {
	f := newFixture(t)
	p1 := f.addPlayer(t, "Guga", 1500)

	_, err := f.ledger.RecordMatch(f.tournamentID, p1, 999, f.heroID, f.heroID, &p1)
	assert.ErrorIs(t, err, player.ErrNotFound)

	var matches, history int64
	require.NoError(t, f.db.Model(&Match{}).Count(&matches).Error)
	require.NoError(t, f.db.Model(&EloHistory{}).Count(&history).Error)
	assert.Zero(t, matches)
	assert.Zero(t, history)
	assert.InDelta(t, 1500, f.playerElo(t, p1), 1e-9)
}

func TestRecordMatchRejectsThirdPartyWinner(t *testing.T) {
	f := newFixture(t)
	p1 := f.addPlayer(t, "Guga", 1500)
	p2 := f.addPlayer(t, "Felipe", 1500)
	outsider := f.addPlayer(t, "Marcelo", 1500)

	_, err := f.ledger.RecordMatch(f.tournamentID, p1, p2, f.heroID, f.heroID, &outsider)
	assert.ErrorIs(t, err, ErrInvalidOutcome)

	var matches int64
	require.NoError(t, f.db.Model(&Match{}).Count(&matches).Error)
	assert.Zero(t, matches)
	assert.InDelta(t, 1500, f.playerElo(t, p1), 1e-9)
	assert.InDelta(t, 1500, f.playerElo(t, p2), 1e-9)
}

func TestRecordMatchRejectsSelfPairing(t *testing.T) {
	f := newFixture(t)
	p1 := f.addPlayer(t, "Guga", 1500)

	_, err := f.ledger.RecordMatch(f.tournamentID, p1, p1, f.heroID, f.heroID, &p1)
	assert.ErrorIs(t, err, ErrSamePlayer)

	var matches int64
	require.NoError(t, f.db.Model(&Match{}).Count(&matches).Error)
	assert.Zero(t, matches)
	assert.InDelta(t, 1500, f.playerElo(t, p1), 1e-9)
}

func TestConcurrentRecordingsConserveRating(t *testing.T) {
	f := newFixture(t)
	p1 := f.addPlayer(t, "Guga", 1500)
	p2 := f.addPlayer(t, "Felipe", 1500)

	const rounds = 8
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		winner := p1
		if i%2 == 0 {
			winner = p2
		}
		go func(w uint) {
			defer wg.Done()
			_, err := f.ledger.RecordMatch(f.tournamentID, p1, p2, f.heroID, f.heroID, &w)
			assert.NoError(t, err)
		}(winner)
	}
	wg.Wait()

	// Whatever the interleaving, the total rating pool never changes.
	assert.InDelta(t, 3000, f.playerElo(t, p1)+f.playerElo(t, p2), 1e-9)

	var history int64
	require.NoError(t, f.db.Model(&EloHistory{}).Count(&history).Error)
	assert.Equal(t, int64(2*rounds), history)
}
