package repositories

import (
	"context"

	"github.com/careerhub/jobmatch/internal/apperrors"
	"github.com/careerhub/jobmatch/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) AddCompany(ctx context.Context, company *entities.Company) error {
	return repo.db.WithContext(ctx).Create(company).Error
}

func (repo *Jobs) GetByID(ctx context.Context, id int64) (*entities.Job, error) {

	var job entities.Job
	err := repo.db.WithContext(ctx).Preload("Company").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("job %d", id)
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) GetActive(ctx context.Context) ([]entities.Job, error) {

	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).Find(&jobs, "is_active = ?", true).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
