package schemas

import (
	"time"

	"webeye/internal/models"
)

type ReviewCreate struct {
	ResourceUUID string `json:"resource_uuid" validate:"required,uuid"`
	Text         string `json:"text" validate:"max=4096"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
}

type ReviewOut struct {
	UUID         string    `json:"uuid"`
	ResourceUUID string    `json:"resource_uuid"`
	UserName     string    `json:"user_name"`
	Text         string    `json:"text"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewReviewOut(r *models.Review) ReviewOut {
	out := ReviewOut{
		UUID:         r.UUID,
		ResourceUUID: r.ResourceUUID,
		Text:         r.Text,
		Rating:       r.Rating,
		CreatedAt:    r.CreatedAt,
	}
	if r.User != nil {
		out.UserName = r.User.Name
	}
	return out
}

func NewReviewOutList(reviews []models.Review) []ReviewOut {
	out := make([]ReviewOut, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewOut(&reviews[i]))
	}
	return out
}
