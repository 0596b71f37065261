package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webeye/internal/models"
	"webeye/internal/schemas"
	"webeye/internal/testutil"
)

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name   string
		checks []models.Check
		want   models.Status
		ok     bool
	}{
		{name: "no checks", want: models.StatusUnknown, ok: false},
		{name: "all ok", checks: []models.Check{{OK: true}, {OK: true}}, want: models.StatusActive, ok: true},
		{name: "none ok", checks: []models.Check{{OK: false}}, want: models.StatusDown, ok: true},
		{name: "mixed", checks: []models.Check{{OK: true}, {OK: false}}, want: models.StatusUnstable, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AggregateStatus(tt.checks)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCheckService_ResourceStatusUsesLatestCheck(t *testing.T) {
	db := testutil.SetupTestDB(t)
	resources := NewResourceService(db)
	svc := NewCheckService(db)
	ctx := context.Background()

	resource := seedResource(t, db, "MIT")
	a, err := resources.CreateNode(ctx, schemas.ResourceNodeCreate{URL: "https://a.mit.edu", ResourceUUID: resource.UUID})
	require.NoError(t, err)
	b, err := resources.CreateNode(ctx, schemas.ResourceNodeCreate{URL: "https://b.mit.edu", ResourceUUID: resource.UUID})
	require.NoError(t, err)

	_, ok, err := svc.ResourceStatus(ctx, resource.UUID)
	require.NoError(t, err)
	assert.False(t, ok)

	old := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, db.Create(&models.Check{Base: models.Base{CreatedAt: old}, NodeUUID: a.UUID, ResourceUUID: resource.UUID, OK: false}).Error)
	require.NoError(t, svc.Record(ctx, &models.Check{NodeUUID: a.UUID, ResourceUUID: resource.UUID, OK: true}))
	require.NoError(t, svc.Record(ctx, &models.Check{NodeUUID: b.UUID, ResourceUUID: resource.UUID, OK: false}))

	status, ok, err := svc.ResourceStatus(ctx, resource.UUID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.StatusUnstable, status)
}

func TestCheckService_Buckets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCheckService(db)
	ctx := context.Background()
	resource := seedResource(t, db, "MIT")
	nodeID := uuid.NewString()

	now := time.Now().UTC()
	at := func(ago time.Duration, ok bool) {
		require.NoError(t, db.Create(&models.Check{
			Base:         models.Base{CreatedAt: now.Add(-ago)},
			NodeUUID:     nodeID,
			ResourceUUID: resource.UUID,
			OK:           ok,
		}).Error)
	}
	// window of 600s split in two: [now-600, now-300) and [now-300, now]
	at(500*time.Second, true)
	at(400*time.Second, false)
	at(100*time.Second, true)
	at(time.Hour, false)

	buckets, err := svc.Buckets(ctx, resource.UUID, schemas.CheckStatsQuery{TimeDelta: 600, MaxCount: 2}, now)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, 2, buckets[0].Total)
	assert.Equal(t, 1, buckets[0].Failed)
	assert.Equal(t, models.StatusUnstable, buckets[0].Status)

	assert.Equal(t, 1, buckets[1].Total)
	assert.Equal(t, models.StatusActive, buckets[1].Status)
	assert.True(t, buckets[1].To.Equal(now))

	_, err = svc.Buckets(ctx, uuid.NewString(), schemas.CheckStatsQuery{}, now)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteCSV(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	checks := []models.Check{
		{Base: models.Base{UUID: "c1", CreatedAt: created}, NodeUUID: "n1", OK: false, StatusCode: 503, LatencyMS: 12, Error: "bad, gateway"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, checks))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"c1", "n1", "2024-01-02T03:04:05Z", "false", "503", "12", "bad, gateway"}, records[1])
}
