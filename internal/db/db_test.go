package db

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"webeye/internal/models"
)

func TestRunMigrations_ReplacesLegacyUniqueIndexes(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := Open(sqlite.Open(dsn), false)
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, conn.Exec("CREATE UNIQUE INDEX idx_resources_name ON resources(name)").Error)
	require.NoError(t, conn.Exec("CREATE UNIQUE INDEX idx_resource_nodes_url ON resource_nodes(url)").Error)

	require.NoError(t, runMigrations(conn))

	m := conn.Migrator()
	assert.False(t, m.HasIndex(&models.Resource{}, "idx_resources_name"))
	assert.False(t, m.HasIndex(&models.ResourceNode{}, "idx_resource_nodes_url"))
	assert.True(t, m.HasIndex(&models.Resource{}, "idx_resources_name_live"))
	assert.True(t, m.HasIndex(&models.ResourceNode{}, "idx_resource_nodes_url_live"))
}
