package tournament

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced tournament does not exist.
var ErrNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	Create(t *Tournament) error
	GetByID(id uint) (*Tournament, error)
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository.
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) Create(t *Tournament) error {
	return r.db.Create(t).Error
}

func (r *tournamentRepository) GetByID(id uint) (*Tournament, error) {
	var t Tournament
	err := r.db.First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
