package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"course-assist-be/internal/entity"
	"course-assist-be/internal/mapper"
	"course-assist-be/internal/model"
	"course-assist-be/internal/repository/contract"
	"course-assist-be/internal/repository/specification"
)

type EscalatedQueryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EscalatedQueryMapper
}

func NewEscalatedQueryRepository(db *gorm.DB) contract.EscalatedQueryRepository {
	return &EscalatedQueryRepositoryImpl{
		db:     db,
		mapper: mapper.NewEscalatedQueryMapper(),
	}
}

func (r *EscalatedQueryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EscalatedQueryRepositoryImpl) Create(ctx context.Context, query *entity.EscalatedQuery) error {
	m := r.mapper.ToModel(query)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*query = *r.mapper.ToEntity(m)
	return nil
}

func (r *EscalatedQueryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EscalatedQuery, error) {
	var m model.EscalatedQuery
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EscalatedQueryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EscalatedQuery, error) {
	var models []*model.EscalatedQuery
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EscalatedQueryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.EscalatedQuery{}).Count(&count).Error
	return count, err
}

func (r *EscalatedQueryRepositoryImpl) MarkAnswered(ctx context.Context, id uuid.UUID, answer string, answeredAt time.Time) (bool, error) {
	// Conditional update: WHERE answered = false makes the first admin win
	// and every later attempt report zero rows.
	res := r.db.WithContext(ctx).
		Model(&model.EscalatedQuery{}).
		Where("id = ? AND answered = ?", id, false).
		Updates(map[string]interface{}{
			"answer":      answer,
			"answered":    true,
			"answered_at": answeredAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
