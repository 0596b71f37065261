package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"webeye/internal/events"
)

// ListOptions controls BaseService.List.
type ListOptions struct {
	Offset   int
	Limit    *int // nil means unbounded
	Filters  map[string]interface{}
	Order    string
	Includes []string
}

// BaseService interface defines common CRUD operations
type BaseService[T any] interface {
	Create(ctx context.Context, entity *T) error
	Get(ctx context.Context, id string, includes ...string) (*T, error)
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// BaseServiceImpl implements BaseService
type BaseServiceImpl[T any] struct {
	db        *gorm.DB
	modelType T
}

func GormTableName(db *gorm.DB, v any) string {
	structName := reflect.TypeOf(v).Name()
	return db.NamingStrategy.TableName(structName)
}

// NewBaseService creates a new base service
func NewBaseService[T any](db *gorm.DB, modelType T) BaseService[T] {
	return &BaseServiceImpl[T]{
		db:        db,
		modelType: modelType,
	}
}

// applyIncludes adds preload statements to the query for each include.
// Related rows are loaded even when soft deleted.
func (s *BaseServiceImpl[T]) applyIncludes(query *gorm.DB, includes ...string) *gorm.DB {
	for _, include := range includes {
		query = query.Preload(include, func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		})
	}
	return query
}

func (s *BaseServiceImpl[T]) event(action string) string {
	return fmt.Sprintf("%s.%s", GormTableName(s.db, s.modelType), action)
}

func (s *BaseServiceImpl[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Create(entity).Error; err != nil {
		return err
	}

	events.Emit(s.event("created"), entity)

	return nil
}

func (s *BaseServiceImpl[T]) Get(ctx context.Context, id string, includes ...string) (*T, error) {
	var entity T
	query := s.applyIncludes(s.db.WithContext(ctx), includes...)

	if err := query.First(&entity, "uuid = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *BaseServiceImpl[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	entities := make([]T, 0)

	query := s.db.WithContext(ctx).Model(new(T))

	// Apply filters
	for key, value := range opts.Filters {
		query = query.Where(key+" = ?", value)
	}

	query = s.applyIncludes(query, opts.Includes...)

	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	if opts.Limit != nil {
		query = query.Limit(*opts.Limit)
	}

	if opts.Order != "" {
		query = query.Order(opts.Order)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}

	return entities, nil
}

// Update writes only the given columns. An empty change set is a no-op and
// does not touch updated_at.
func (s *BaseServiceImpl[T]) Update(ctx context.Context, id string, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}

	result := s.db.WithContext(ctx).Model(new(T)).Where("uuid = ?", id).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	events.Emit(s.event("updated"), id)

	return nil
}

// Delete soft deletes the row.
func (s *BaseServiceImpl[T]) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("uuid = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	events.Emit(s.event("deleted"), id)

	return nil
}

// exists reports whether a live row of model matches the condition.
func exists(ctx context.Context, db *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	err := db.WithContext(ctx).Select("uuid").Where(query, args...).Take(model).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
