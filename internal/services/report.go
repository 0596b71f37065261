package services

import (
	"context"

	"gorm.io/gorm"

	"webeye/internal/models"
	"webeye/internal/schemas"
	"webeye/internal/utils/logger"
)

type ReportService struct {
	db     *gorm.DB
	base   BaseService[models.Report]
	logger *logger.Logger
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		db:     db,
		base:   NewBaseService(db, models.Report{}),
		logger: logger.New("report_service"),
	}
}

// Create stores a report for an existing resource. author may be nil for
// reports created by the system; a non-admin author cannot mark its own
// report as moderated.
func (s *ReportService) Create(ctx context.Context, in schemas.ReportCreate, author *models.User) (*models.Report, error) {
	in.ApplyDefaults()

	if _, err := models.GetResourceByUUID(in.ResourceUUID, s.db.WithContext(ctx)); err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}

	report := &models.Report{
		Base:         models.Base{UUID: in.UUID},
		ResourceUUID: in.ResourceUUID,
		Status:       in.Status,
		Text:         in.Text,
		IsModerated:  in.IsModerated,
	}
	if author != nil {
		report.UserUUID = &author.UUID
		if !author.Role.IsAdmin() {
			report.IsModerated = false
		}
	}

	if err := s.base.Create(ctx, report); err != nil {
		return nil, translate(err, "", msgReportExists)
	}
	return report, nil
}

// List returns reports newest first, each with its resource preloaded.
func (s *ReportService) List(ctx context.Context, filter schemas.ReportFilter) ([]models.Report, error) {
	filter.ApplyDefaults()

	filters := make(map[string]interface{})
	if filter.IsModerated != nil {
		filters["is_moderated"] = *filter.IsModerated
	}

	return s.base.List(ctx, ListOptions{
		Offset:   filter.Skip,
		Limit:    filter.Limit,
		Filters:  filters,
		Order:    "created_at DESC, uuid",
		Includes: []string{"Resource"},
	})
}

func (s *ReportService) Get(ctx context.Context, id string) (*models.Report, error) {
	report, err := s.base.Get(ctx, id, "Resource")
	if err != nil {
		return nil, translate(err, msgReportNotFound, "")
	}
	return report, nil
}

// Update writes only the fields present in in. An empty update returns the
// stored report untouched.
func (s *ReportService) Update(ctx context.Context, id string, in schemas.ReportUpdate) (*models.Report, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.base.Update(ctx, id, in.Changes()); err != nil {
		return nil, translate(err, msgReportNotFound, "")
	}

	return s.Get(ctx, id)
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.base.Delete(ctx, id); err != nil {
		return translate(err, msgReportNotFound, "")
	}
	return nil
}

// ListForResource returns the moderated reports of a resource, newest first.
func (s *ReportService) ListForResource(ctx context.Context, resourceID string, page schemas.Page) ([]models.Report, error) {
	if _, err := models.GetResourceByUUID(resourceID, s.db.WithContext(ctx)); err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}

	page.ApplyDefaults()
	return s.base.List(ctx, ListOptions{
		Offset: page.Skip,
		Limit:  page.Limit,
		Filters: map[string]interface{}{
			"resource_uuid": resourceID,
			"is_moderated":  true,
		},
		Order: "created_at DESC, uuid",
	})
}
