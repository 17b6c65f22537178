package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodgram/internal/domain"
)

// FollowRepository handles persistence for directed follow edges.
type FollowRepository interface {
	// Create fails with ErrAlreadyFollowing if the edge exists.
	Create(ctx context.Context, fromUserID, toUserID int64) error
	// Delete fails with ErrNotFollowing if the edge is absent.
	Delete(ctx context.Context, fromUserID, toUserID int64) error
	Exists(ctx context.Context, fromUserID, toUserID int64) (bool, error)
	// ListFollowing returns the users fromUserID follows, newest edge
	// first, with ToUser preloaded.
	ListFollowing(ctx context.Context, fromUserID int64, limit, offset int) ([]domain.Follow, int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, fromUserID, toUserID int64) error {
	edge := &domain.Follow{
		ID:         uuid.New().String(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
	}
	err := r.db.WithContext(ctx).Create(edge).Error
	if isDuplicateKey(err) {
		return ErrAlreadyFollowing
	}
	return err
}

func (r *followRepository) Delete(ctx context.Context, fromUserID, toUserID int64) error {
	result := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Delete(&domain.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Follow{}).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) ListFollowing(ctx context.Context, fromUserID int64, limit, offset int) ([]domain.Follow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Follow{}).
		Where("from_user_id = ?", fromUserID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Where("from_user_id = ?", fromUserID).
		Preload("ToUser").
		Order("created_at DESC, id DESC")

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var edges []domain.Follow
	if err := query.Find(&edges).Error; err != nil {
		return nil, 0, err
	}
	return edges, total, nil
}
