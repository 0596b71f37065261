package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"gorm.io/gorm"

	"webeye/internal/models"
	"webeye/internal/schemas"
	"webeye/internal/utils/logger"
)

// CheckService stores node probe results and summarizes them.
type CheckService struct {
	db     *gorm.DB
	base   BaseService[models.Check]
	logger *logger.Logger
}

func NewCheckService(db *gorm.DB) *CheckService {
	return &CheckService{
		db:     db,
		base:   NewBaseService(db, models.Check{}),
		logger: logger.New("check_service"),
	}
}

func (s *CheckService) Record(ctx context.Context, check *models.Check) error {
	if err := s.base.Create(ctx, check); err != nil {
		return s.logger.Error("failed to record check for node %s", err, check.NodeUUID)
	}
	return nil
}

// AggregateStatus folds the latest check of each node into a resource
// status. ok is false when there are no checks at all.
func AggregateStatus(latest []models.Check) (status models.Status, ok bool) {
	if len(latest) == 0 {
		return models.StatusUnknown, false
	}

	passed := 0
	for _, c := range latest {
		if c.OK {
			passed++
		}
	}

	switch passed {
	case len(latest):
		return models.StatusActive, true
	case 0:
		return models.StatusDown, true
	default:
		return models.StatusUnstable, true
	}
}

// LatestPerNode returns the most recent check of every live node of the
// resource. Nodes never probed are skipped.
func (s *CheckService) LatestPerNode(ctx context.Context, resourceID string) ([]models.Check, error) {
	var nodeIDs []string
	if err := s.db.WithContext(ctx).
		Model(&models.ResourceNode{}).
		Where("resource_uuid = ?", resourceID).
		Pluck("uuid", &nodeIDs).Error; err != nil {
		return nil, err
	}

	latest := make([]models.Check, 0, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		var check models.Check
		err := s.db.WithContext(ctx).
			Where("node_uuid = ?", nodeID).
			Order("created_at DESC").
			Take(&check).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		latest = append(latest, check)
	}
	return latest, nil
}

// ResourceStatus computes the status a resource should have from its nodes'
// latest checks.
func (s *CheckService) ResourceStatus(ctx context.Context, resourceID string) (models.Status, bool, error) {
	latest, err := s.LatestPerNode(ctx, resourceID)
	if err != nil {
		return "", false, err
	}
	status, ok := AggregateStatus(latest)
	return status, ok, nil
}

// Buckets splits the q.TimeDelta seconds before now into q.MaxCount equal
// windows and counts the resource's checks in each, oldest first.
func (s *CheckService) Buckets(ctx context.Context, resourceID string, q schemas.CheckStatsQuery, now time.Time) ([]schemas.CheckBucket, error) {
	if _, err := models.GetResourceByUUID(resourceID, s.db.WithContext(ctx)); err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}

	q.ApplyDefaults()
	now = now.UTC()
	start := now.Add(-time.Duration(q.TimeDelta) * time.Second)
	width := time.Duration(q.TimeDelta) * time.Second / time.Duration(q.MaxCount)

	checks, err := s.between(ctx, resourceID, start, now)
	if err != nil {
		return nil, err
	}

	buckets := make([]schemas.CheckBucket, q.MaxCount)
	for i := range buckets {
		buckets[i].From = start.Add(time.Duration(i) * width)
		buckets[i].To = buckets[i].From.Add(width)
	}
	buckets[len(buckets)-1].To = now

	for _, c := range checks {
		i := int(c.CreatedAt.Sub(start) / width)
		if i < 0 {
			continue
		}
		if i >= len(buckets) {
			i = len(buckets) - 1
		}
		buckets[i].Total++
		if !c.OK {
			buckets[i].Failed++
		}
	}

	for i := range buckets {
		buckets[i].Status = bucketStatus(buckets[i])
	}
	return buckets, nil
}

func bucketStatus(b schemas.CheckBucket) models.Status {
	switch {
	case b.Total == 0:
		return models.StatusUnknown
	case b.Failed == 0:
		return models.StatusActive
	case b.Failed == b.Total:
		return models.StatusDown
	default:
		return models.StatusUnstable
	}
}

// History returns the resource's checks created since the given time, oldest
// first.
func (s *CheckService) History(ctx context.Context, resourceID string, since time.Time) ([]models.Check, error) {
	if _, err := models.GetResourceByUUID(resourceID, s.db.WithContext(ctx)); err != nil {
		return nil, translate(err, msgResourceNotFound, "")
	}
	return s.between(ctx, resourceID, since.UTC(), time.Now().UTC())
}

func (s *CheckService) between(ctx context.Context, resourceID string, from, to time.Time) ([]models.Check, error) {
	checks := make([]models.Check, 0)
	err := s.db.WithContext(ctx).
		Where("resource_uuid = ? AND created_at >= ? AND created_at <= ?", resourceID, from, to).
		Order("created_at").
		Find(&checks).Error
	if err != nil {
		return nil, err
	}
	return checks, nil
}

var csvHeader = []string{"uuid", "node_uuid", "created_at", "ok", "status_code", "latency_ms", "error"}

// WriteCSV writes checks as CSV with a header row.
func WriteCSV(w io.Writer, checks []models.Check) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range checks {
		record := []string{
			c.UUID,
			c.NodeUUID,
			c.CreatedAt.UTC().Format(time.RFC3339),
			strconv.FormatBool(c.OK),
			strconv.Itoa(c.StatusCode),
			strconv.FormatInt(c.LatencyMS, 10),
			c.Error,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write check %s: %w", c.UUID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
