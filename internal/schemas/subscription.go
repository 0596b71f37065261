package schemas

import "webeye/internal/models"

type SubscriptionCreate struct {
	ResourceUUID string `json:"resource_uuid" validate:"required,uuid"`
}

type SubscriptionUpdate struct {
	IsActive *bool `json:"is_active"`
}

type SubscriptionFilter struct {
	ResourceUUID string `query:"resource_uuid" validate:"omitempty,uuid"`
}

type SubscriptionOut struct {
	UUID         string `json:"uuid"`
	ResourceUUID string `json:"resource_uuid"`
	IsActive     bool   `json:"is_active"`
}

func NewSubscriptionOut(s *models.Subscription) SubscriptionOut {
	return SubscriptionOut{
		UUID:         s.UUID,
		ResourceUUID: s.ResourceUUID,
		IsActive:     s.IsActive,
	}
}

func NewSubscriptionOutList(subs []models.Subscription) []SubscriptionOut {
	out := make([]SubscriptionOut, 0, len(subs))
	for i := range subs {
		out = append(out, NewSubscriptionOut(&subs[i]))
	}
	return out
}
