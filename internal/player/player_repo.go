package player

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a referenced player does not exist.
var ErrNotFound = errors.New("player not found")

type PlayerRepository interface {
	// FindOrCreateByName returns the player with the given name, creating
	// it at the baseline rating if absent. Idempotent: repeated calls with
	// the same name always return the same row.
	FindOrCreateByName(name string) (*Player, error)
	GetByID(id uint) (*Player, error)
	GetByName(name string) (*Player, error)
	Count() (int64, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) FindOrCreateByName(name string) (*Player, error) {
	// Conflict-ignoring insert followed by a read: if two callers race on
	// the same new name, exactly one row survives and both get it back.
	p := Player{Name: name}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&p).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "unable to insert player")
	}

	var found Player
	if err := r.db.Where("name = ?", name).First(&found).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "unable to load player after upsert")
	}
	return &found, nil
}

func (r *playerRepository) GetByID(id uint) (*Player, error) {
	var p Player
	err := r.db.First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetByName(name string) (*Player, error) {
	var p Player
	err := r.db.Where("name = ?", name).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&Player{}).Count(&total).Error
	return total, err
}
