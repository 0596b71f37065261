package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"webeye/internal/events"
	"webeye/internal/models"
	"webeye/internal/schemas"
	"webeye/internal/utils/logger"
)

// ResourceRepository is the part of ResourceService the check workers need.
type ResourceRepository interface {
	ListAllNodes(ctx context.Context) ([]models.ResourceNode, error)
	GetNode(ctx context.Context, id string) (*models.ResourceNode, error)
	SetStatus(ctx context.Context, id string, status models.Status) (bool, error)
}

var _ ResourceRepository = (*ResourceService)(nil)

type ResourceService struct {
	db     *gorm.DB
	base   BaseService[models.Resource]
	nodes  BaseService[models.ResourceNode]
	logger *logger.Logger
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{
		db:     db,
		base:   NewBaseService(db, models.Resource{}),
		nodes:  NewBaseService(db, models.ResourceNode{}),
		logger: logger.New("resource_service"),
	}
}

func (s *ResourceService) List(ctx context.Context, page schemas.Page) ([]models.Resource, error) {
	page.ApplyDefaults()
	return s.base.List(ctx, ListOptions{
		Offset: page.Skip,
		Limit:  page.Limit,
		Order:  "created_at, uuid",
	})
}

func (s *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	resource, err := s.base.Get(ctx, id)
	if err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}
	return resource, nil
}

// Create rejects a name that is already taken by a live resource.
func (s *ResourceService) Create(ctx context.Context, in schemas.ResourceCreate) (*models.Resource, error) {
	in.ApplyDefaults()

	_, err := models.GetResourceByName(in.Name, s.db.WithContext(ctx))
	if err == nil {
		return nil, Conflict(msgResourceExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	resource := &models.Resource{
		Base:   models.Base{UUID: in.UUID},
		Name:   in.Name,
		Status: in.Status,
	}
	if err := s.base.Create(ctx, resource); err != nil {
		return nil, translate(err, "", msgResourceExists)
	}

	s.logger.Info("Created resource %s (%s)", resource.Name, resource.UUID)
	return resource, nil
}

// Update applies the non-nil fields of in. Renaming a resource to its own
// current name is allowed.
func (s *ResourceService) Update(ctx context.Context, id string, in schemas.ResourceUpdate) (*models.Resource, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if in.Name != nil && *in.Name != resource.Name {
		existing, err := models.GetResourceByName(*in.Name, s.db.WithContext(ctx))
		if err == nil && existing.UUID != resource.UUID {
			return nil, Conflict(msgResourceExists)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		changes["name"] = *in.Name
	}

	previous := resource.Status
	if in.Status != nil && *in.Status != resource.Status {
		changes["status"] = *in.Status
	}

	if err := s.base.Update(ctx, id, changes); err != nil {
		return nil, translate(err, msgResourceNotFound, msgResourceExists)
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if updated.Status != previous {
		s.emitStatusChange(updated, previous)
	}

	return updated, nil
}

// Delete soft deletes the resource together with its nodes.
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("uuid = ?", id).Delete(&models.Resource{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("resource_uuid = ?", id).Delete(&models.ResourceNode{}).Error
	})
	if err != nil {
		return translate(err, msgResourceNotFound, "")
	}

	events.Emit(GormTableName(s.db, models.Resource{})+".deleted", id)
	s.logger.Info("Deleted resource %s", id)
	return nil
}

// GetWithNodes returns the resource and its live nodes.
func (s *ResourceService) GetWithNodes(ctx context.Context, id string) (*models.Resource, error) {
	var resource models.Resource
	err := s.db.WithContext(ctx).
		Preload("Nodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, uuid")
		}).
		First(&resource, "uuid = ?", id).Error
	if err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}
	if resource.Nodes == nil {
		resource.Nodes = []models.ResourceNode{}
	}
	return &resource, nil
}

// CreateNode checks the url before the parent resource, so a duplicate url
// wins over an unknown resource.
func (s *ResourceService) CreateNode(ctx context.Context, in schemas.ResourceNodeCreate) (*models.ResourceNode, error) {
	in.ApplyDefaults()

	_, err := models.GetNodeByURL(in.URL, s.db.WithContext(ctx))
	if err == nil {
		return nil, Conflict(msgNodeExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := models.GetResourceByUUID(in.ResourceUUID, s.db.WithContext(ctx)); err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}

	node := &models.ResourceNode{
		Base:         models.Base{UUID: in.UUID},
		URL:          in.URL,
		ResourceUUID: in.ResourceUUID,
	}
	if err := s.nodes.Create(ctx, node); err != nil {
		return nil, translate(err, "", msgNodeExists)
	}

	s.logger.Info("Created node %s for resource %s", node.URL, node.ResourceUUID)
	return node, nil
}

// ListNodes pages over every node whose resource is still live.
func (s *ResourceService) ListNodes(ctx context.Context, page schemas.Page) ([]models.ResourceNode, error) {
	page.ApplyDefaults()
	nodes := make([]models.ResourceNode, 0)
	err := s.liveNodes(ctx).
		Order("resource_nodes.created_at, resource_nodes.uuid").
		Offset(page.Skip).
		Limit(page.Size()).
		Find(&nodes).Error
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func (s *ResourceService) liveNodes(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Joins("JOIN resources ON resources.uuid = resource_nodes.resource_uuid AND resources.deleted_at IS NULL")
}

// ListAllNodes returns the nodes whose resource is still live.
func (s *ResourceService) ListAllNodes(ctx context.Context) ([]models.ResourceNode, error) {
	nodes := make([]models.ResourceNode, 0)
	err := s.liveNodes(ctx).
		Order("resource_nodes.created_at").
		Find(&nodes).Error
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func (s *ResourceService) GetNode(ctx context.Context, id string) (*models.ResourceNode, error) {
	node, err := s.nodes.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "The resource node with this id does not exist", "")
	}
	return node, nil
}

// SetStatus stores a computed status and reports whether it changed.
func (s *ResourceService) SetStatus(ctx context.Context, id string, status models.Status) (bool, error) {
	resource, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if resource.Status == status {
		return false, nil
	}

	previous := resource.Status
	if err := s.base.Update(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return false, translate(err, msgResourceNotFound, "")
	}
	resource.Status = status

	s.emitStatusChange(resource, previous)
	return true, nil
}

func (s *ResourceService) emitStatusChange(resource *models.Resource, from models.Status) {
	s.logger.Info("Resource %s status %s -> %s", resource.Name, from, resource.Status)
	events.Emit(events.ResourceStatusChanged, events.StatusChange{
		ResourceUUID: resource.UUID,
		ResourceName: resource.Name,
		From:         string(from),
		To:           string(resource.Status),
	})
}
