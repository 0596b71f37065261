package services

import (
	"context"

	"gorm.io/gorm"

	"webeye/internal/models"
	"webeye/internal/schemas"
	"webeye/internal/utils/logger"
)

const (
	msgSubscriptionNotFound = "The subscription with this id does not exist"
	msgSubscriptionExists   = "Already subscribed to this resource"
)

type SubscriptionService struct {
	db     *gorm.DB
	base   BaseService[models.Subscription]
	logger *logger.Logger
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{
		db:     db,
		base:   NewBaseService(db, models.Subscription{}),
		logger: logger.New("subscription_service"),
	}
}

func (s *SubscriptionService) Create(ctx context.Context, in schemas.SubscriptionCreate, user *models.User) (*models.Subscription, error) {
	if _, err := models.GetResourceByUUID(in.ResourceUUID, s.db.WithContext(ctx)); err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}

	found, err := exists(ctx, s.db, &models.Subscription{}, "user_uuid = ? AND resource_uuid = ?", user.UUID, in.ResourceUUID)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, Conflict(msgSubscriptionExists)
	}

	sub := &models.Subscription{
		UserUUID:     user.UUID,
		ResourceUUID: in.ResourceUUID,
		IsActive:     true,
	}
	if err := s.base.Create(ctx, sub); err != nil {
		return nil, translate(err, "", msgSubscriptionExists)
	}
	return sub, nil
}

// Update changes a subscription owned by user. Another user's subscription
// is reported as missing.
func (s *SubscriptionService) Update(ctx context.Context, id string, in schemas.SubscriptionUpdate, user *models.User) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.WithContext(ctx).
		Where("uuid = ? AND user_uuid = ?", id, user.UUID).
		First(&sub).Error
	if err != nil {
		return nil, translate(err, msgSubscriptionNotFound, "")
	}

	if in.IsActive == nil || *in.IsActive == sub.IsActive {
		return &sub, nil
	}

	if err := s.base.Update(ctx, id, map[string]interface{}{"is_active": *in.IsActive}); err != nil {
		return nil, translate(err, msgSubscriptionNotFound, "")
	}
	sub.IsActive = *in.IsActive
	return &sub, nil
}

func (s *SubscriptionService) ListForUser(ctx context.Context, user *models.User, filter schemas.SubscriptionFilter) ([]models.Subscription, error) {
	filters := map[string]interface{}{"user_uuid": user.UUID}
	if filter.ResourceUUID != "" {
		filters["resource_uuid"] = filter.ResourceUUID
	}
	return s.base.List(ctx, ListOptions{
		Filters: filters,
		Order:   "created_at, uuid",
	})
}

// ActiveSubscriberChats returns the Telegram chat ids of users with an active
// subscription to the resource.
func (s *SubscriptionService) ActiveSubscriberChats(ctx context.Context, resourceID string) ([]int64, error) {
	chats := make([]int64, 0)
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN subscriptions ON subscriptions.user_uuid = users.uuid AND subscriptions.deleted_at IS NULL").
		Where("subscriptions.resource_uuid = ? AND subscriptions.is_active = ? AND users.telegram_chat_id IS NOT NULL", resourceID, true).
		Distinct().
		Pluck("users.telegram_chat_id", &chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}
