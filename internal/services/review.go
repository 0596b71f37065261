package services

import (
	"context"
	"math"

	"gorm.io/gorm"

	"webeye/internal/events"
	"webeye/internal/models"
	"webeye/internal/schemas"
	"webeye/internal/utils/logger"
)

type ReviewService struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{
		db:     db,
		logger: logger.New("review_service"),
	}
}

// Create stores the review and recomputes the resource rating in the same
// transaction.
func (s *ReviewService) Create(ctx context.Context, in schemas.ReviewCreate, author *models.User) (*models.Review, error) {
	review := &models.Review{
		ResourceUUID: in.ResourceUUID,
		UserUUID:     author.UUID,
		Text:         in.Text,
		Rating:       in.Rating,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := models.GetResourceByUUID(in.ResourceUUID, tx); err != nil {
			return translate(err, msgResourceNotFound, "")
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}

		var avg float64
		if err := tx.Model(&models.Review{}).
			Where("resource_uuid = ?", in.ResourceUUID).
			Select("COALESCE(AVG(rating), 0)").
			Scan(&avg).Error; err != nil {
			return err
		}

		return tx.Model(&models.Resource{}).
			Where("uuid = ?", in.ResourceUUID).
			Update("rating", math.Round(avg*100)/100).Error
	})
	if err != nil {
		return nil, err
	}

	review.User = author
	events.Emit("reviews.created", review)
	return review, nil
}

// ListForResource returns the reviews of a resource with their authors,
// newest first.
func (s *ReviewService) ListForResource(ctx context.Context, resourceID string, page schemas.Page) ([]models.Review, error) {
	if _, err := models.GetResourceByUUID(resourceID, s.db.WithContext(ctx)); err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}

	page.ApplyDefaults()
	reviews := make([]models.Review, 0)
	err := s.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("resource_uuid = ?", resourceID).
		Order("created_at DESC, uuid").
		Offset(page.Skip).
		Limit(page.Size()).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
