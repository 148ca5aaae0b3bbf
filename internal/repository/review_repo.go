package repository

import (
	"context"
	"math"

	"gorm.io/gorm"

	"servicehub/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	tx := r.db.WithContext(ctx).
		Preload("Customer.User").
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Find(&reviews)
	return reviews, tx.Error
}

// AverageForProfessional returns the mean rating rounded to one decimal, or
// nil when the professional has no reviews.
func (r *ReviewRepository) AverageForProfessional(ctx context.Context, professionalID int64) (*float64, error) {
	var avg *float64
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("AVG(rating)").
		Where("professional_id = ?", professionalID).
		Scan(&avg)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if avg == nil {
		return nil, nil
	}
	rounded := math.Round(*avg*10) / 10
	return &rounded, nil
}

type avgRatingRow struct {
	ProfessionalID int64
	Average        float64
}

// AverageForProfessionals batches the average-rating lookup for a dashboard
// listing. Professionals without reviews are absent from the map.
func (r *ReviewRepository) AverageForProfessionals(ctx context.Context, professionalIDs []int64) (map[int64]float64, error) {
	out := make(map[int64]float64)
	if len(professionalIDs) == 0 {
		return out, nil
	}

	var rows []avgRatingRow
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("professional_id, AVG(rating) AS average").
		Where("professional_id IN ?", professionalIDs).
		Group("professional_id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	for _, row := range rows {
		out[row.ProfessionalID] = math.Round(row.Average*10) / 10
	}
	return out, nil
}

type ratingCountRow struct {
	Rating int
	Count  int64
}

func (r *ReviewRepository) CountByRating(ctx context.Context) (map[int]int64, error) {
	var rows []ratingCountRow
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("rating, COUNT(id) AS count").
		Group("rating").
		Order("rating").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		out[row.Rating] = row.Count
	}
	return out, nil
}
