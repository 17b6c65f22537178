package repository

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/domain"
)

type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	var tags []domain.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}
