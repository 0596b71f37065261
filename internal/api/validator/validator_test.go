package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webeye/internal/models"
	"webeye/internal/schemas"
)

func TestValidate_ResourceCreate(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&schemas.ResourceCreate{Name: "MIT", Status: models.StatusActive}))
	assert.NoError(t, v.Validate(&schemas.ResourceCreate{Name: "MIT"}))

	err := v.Validate(&schemas.ResourceCreate{Status: "sleeping"})
	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))

	formatted := ve.Format()
	assert.Equal(t, "name is required", formatted["name"])
	assert.Contains(t, formatted["status"], "must be one of")
}

func TestValidate_ReportUpdatePointers(t *testing.T) {
	v := NewValidator()
	bad := models.Status("nope")
	good := models.StatusDown

	assert.NoError(t, v.Validate(&schemas.ReportUpdate{}))
	assert.NoError(t, v.Validate(&schemas.ReportUpdate{Status: &good}))
	assert.Error(t, v.Validate(&schemas.ReportUpdate{Status: &bad}))
}

func TestValidate_ReportCreateRequiresResource(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&schemas.ReportCreate{Status: models.StatusActive})
	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Format(), "resource_uuid")

	err = v.Validate(&schemas.ReportCreate{Status: models.StatusActive, ResourceUUID: "not-a-uuid"})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "resource_uuid must be a valid UUID", ve.Format()["resource_uuid"])
}

func TestValidate_NodeURL(t *testing.T) {
	v := NewValidator()
	id := "6f1c1c0e-7a39-4f1b-9a8e-3d2f5c4b1a00"

	assert.NoError(t, v.Validate(&schemas.ResourceNodeCreate{URL: "http://x", ResourceUUID: id}))
	assert.Error(t, v.Validate(&schemas.ResourceNodeCreate{URL: "not a url", ResourceUUID: id}))
}

func TestValidate_CheckStatsBounds(t *testing.T) {
	v := NewValidator()

	q := schemas.CheckStatsQuery{}
	q.ApplyDefaults()
	assert.NoError(t, v.Validate(&q))
	assert.Error(t, v.Validate(&schemas.CheckStatsQuery{TimeDelta: 10, MaxCount: 3}))
	assert.Error(t, v.Validate(&schemas.CheckStatsQuery{TimeDelta: 600, MaxCount: 8}))
}
