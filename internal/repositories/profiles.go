package repositories

import (
	"context"

	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Profiles struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

func (repo *Profiles) Add(ctx context.Context, profile *entities.Profile) error {
	return repo.db.WithContext(ctx).Create(profile).Error
}

func (repo *Profiles) GetByID(ctx context.Context, id int64) (*entities.Profile, error) {

	var profile entities.Profile
	if err := repo.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("profile %d", id)
		}
		return nil, err
	}
	return &profile, nil
}

func (repo *Profiles) Update(ctx context.Context, profile *entities.Profile) error {
	return repo.db.WithContext(ctx).Model(&entities.Profile{}).
		Where("id = ?", profile.ID).Updates(profile).Error
}
