package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/model"
)

// GormSubmissionStore adalah implementasi SubmissionStore di atas Postgres.
type GormSubmissionStore struct {
	DB *gorm.DB
}

func NewGormSubmissionStore(db *gorm.DB) *GormSubmissionStore {
	return &GormSubmissionStore{DB: db}
}

func (s *GormSubmissionStore) Insert(ctx context.Context, sub *model.ContactSubmission) error {
	return s.DB.WithContext(ctx).Create(sub).Error
}

func (s *GormSubmissionStore) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	var sub model.ContactSubmission
	err := s.DB.WithContext(ctx).First(&sub, "submission_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *GormSubmissionStore) Update(ctx context.Context, id string, fields map[string]any) error {
	return s.DB.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("submission_id = ?", id).
		Updates(fields).Error
}

func (s *GormSubmissionStore) List(ctx context.Context, status string, offset, limit int) ([]model.ContactSubmission, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.ContactSubmission{})
	if status != "" {
		q = q.Where("submission_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []model.ContactSubmission
	if err := q.
		Order("submission_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error; err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (s *GormSubmissionStore) All(ctx context.Context, status string) ([]model.ContactSubmission, error) {
	q := s.DB.WithContext(ctx).Model(&model.ContactSubmission{})
	if status != "" {
		q = q.Where("submission_status = ?", status)
	}
	var subs []model.ContactSubmission
	if err := q.Order("submission_created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *GormSubmissionStore) CountCreatedSince(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("submission_created_at >= ?", t).
		Count(&n).Error
	return n, err
}

func (s *GormSubmissionStore) CountOverdue(ctx context.Context, today time.Time) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("submission_due_date IS NOT NULL AND submission_due_date < ? AND submission_status <> ?", today, model.StatusClosed).
		Count(&n).Error
	return n, err
}

func (s *GormSubmissionStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("submission_status = ?", status).
		Count(&n).Error
	return n, err
}

func (s *GormSubmissionStore) CountResponded(ctx context.Context) (int64, int64, error) {
	var responded, total int64
	if err := s.DB.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := s.DB.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("submission_is_responded = TRUE").
		Count(&responded).Error; err != nil {
		return 0, 0, err
	}
	return responded, total, nil
}
