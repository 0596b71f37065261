// Package schemas defines the request and response records of the HTTP API.
package schemas

import (
	"github.com/google/uuid"

	"webeye/internal/models"
)

// DefaultLimit is the page size used when the caller sends none.
const DefaultLimit = 100

// Page is an offset/limit window. No upper bound is applied to Limit. A nil
// Limit means the caller sent none; an explicit zero yields an empty page.
type Page struct {
	Skip  int  `query:"skip" json:"skip" validate:"min=0"`
	Limit *int `query:"limit" json:"limit" validate:"omitempty,min=0"`
}

func (p *Page) ApplyDefaults() {
	if p.Limit == nil {
		limit := DefaultLimit
		p.Limit = &limit
	}
}

// Size returns the requested page size, or DefaultLimit when none was sent.
func (p Page) Size() int {
	if p.Limit == nil {
		return DefaultLimit
	}
	return *p.Limit
}

type ResourceCreate struct {
	UUID   string        `json:"uuid" validate:"omitempty,uuid"`
	Name   string        `json:"name" validate:"required,max=255"`
	Status models.Status `json:"status" validate:"omitempty,status"`
}

// ApplyDefaults fills a missing uuid and status.
func (r *ResourceCreate) ApplyDefaults() {
	if r.UUID == "" {
		r.UUID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = models.StatusActive
	}
}

// ResourceUpdate is a partial update; nil fields stay unchanged.
type ResourceUpdate struct {
	Name   *string        `json:"name" validate:"omitempty,min=1,max=255"`
	Status *models.Status `json:"status" validate:"omitempty,status"`
}

type ResourceOut struct {
	UUID   string        `json:"uuid"`
	Name   string        `json:"name"`
	Status models.Status `json:"status"`
	Rating float64       `json:"rating"`
}

func NewResourceOut(r *models.Resource) ResourceOut {
	return ResourceOut{
		UUID:   r.UUID,
		Name:   r.Name,
		Status: r.Status,
		Rating: r.Rating,
	}
}

func NewResourceOutList(resources []models.Resource) []ResourceOut {
	out := make([]ResourceOut, 0, len(resources))
	for i := range resources {
		out = append(out, NewResourceOut(&resources[i]))
	}
	return out
}

type ResourceNodeCreate struct {
	UUID         string `json:"uuid" validate:"omitempty,uuid"`
	URL          string `json:"url" validate:"required,url,max=2048"`
	ResourceUUID string `json:"resource_uuid" validate:"required,uuid"`
}

func (n *ResourceNodeCreate) ApplyDefaults() {
	if n.UUID == "" {
		n.UUID = uuid.NewString()
	}
}

type ResourceNodeOut struct {
	UUID         string `json:"uuid"`
	URL          string `json:"url"`
	ResourceUUID string `json:"resource_uuid"`
}

func NewResourceNodeOut(n *models.ResourceNode) ResourceNodeOut {
	return ResourceNodeOut{
		UUID:         n.UUID,
		URL:          n.URL,
		ResourceUUID: n.ResourceUUID,
	}
}

func NewResourceNodeOutList(nodes []models.ResourceNode) []ResourceNodeOut {
	out := make([]ResourceNodeOut, 0, len(nodes))
	for i := range nodes {
		out = append(out, NewResourceNodeOut(&nodes[i]))
	}
	return out
}
