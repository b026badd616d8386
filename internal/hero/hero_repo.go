package hero

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a referenced hero does not exist.
var ErrNotFound = errors.New("hero not found")

type HeroRepository interface {
	// FindOrCreateByName returns the hero with the given name, creating it
	// if absent. The class is only written on first creation; heroes are
	// immutable afterwards.
	FindOrCreateByName(name, class string) (*Hero, error)
	GetByID(id uint) (*Hero, error)
}

type heroRepository struct {
	db *gorm.DB
}

// NewHeroRepository creates a new instance of HeroRepository.
func NewHeroRepository(db *gorm.DB) HeroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) FindOrCreateByName(name, class string) (*Hero, error) {
	h := Hero{Name: name, Class: class}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&h).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "unable to insert hero")
	}

	var found Hero
	if err := r.db.Where("name = ?", name).First(&found).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "unable to load hero after upsert")
	}
	return &found, nil
}

func (r *heroRepository) GetByID(id uint) (*Hero, error) {
	var h Hero
	err := r.db.First(&h, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}
