package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"webeye/internal/config"
	"webeye/internal/models"
	console "webeye/internal/utils/logger"
)

var DB *gorm.DB
var log = console.New("DB")

// Connect opens the postgres database described by cfg, retrying a few times
// while the server comes up, and runs migrations.
func Connect(cfg *config.Config) error {
	dsn := cfg.Database.DSN()

	log.Info("Connecting to database %s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	maxRetries := 5
	var err error
	for i := 0; i < maxRetries; i++ {
		DB, err = Open(postgres.Open(dsn), cfg.Server.Debug)
		if err == nil {
			log.Success("Connected to database")

			// Configure connection pool
			sqlDB, err := DB.DB()
			if err != nil {
				return log.Error("Failed to get underlying *sql.DB instance", err)
			}

			sqlDB.SetMaxOpenConns(100)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(time.Hour)
			sqlDB.SetConnMaxIdleTime(time.Minute * 30)

			return nil
		}
		log.Warn("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(time.Second * 5)
	}
	return log.Error("Failed to connect to database after %d attempts", err, maxRetries)
}

// Open opens a gorm connection on the given dialector and migrates the schema.
func Open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(level),
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              true,
		AllowGlobalUpdate:                        false,
		TranslateError:                           true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := runMigrations(conn); err != nil {
		return nil, log.Error("Failed to run migrations", err)
	}
	log.Success("Migrations completed")

	return conn, nil
}

func runMigrations(conn *gorm.DB) error {
	log.Info("Running migrations...")
	// Begin transaction for migrations
	tx := conn.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	// Defer rollback in case of error
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.AutoMigrate(models.All()...); err != nil {
		tx.Rollback()
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := dropLegacyIndexes(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("drop legacy indexes: %w", err)
	}

	return tx.Commit().Error
}

// Unique indexes that also covered soft deleted rows, superseded by the
// partial *_live indexes.
var legacyIndexes = []struct {
	model interface{}
	name  string
}{
	{&models.Resource{}, "idx_resources_name"},
	{&models.ResourceNode{}, "idx_resource_nodes_url"},
}

func dropLegacyIndexes(tx *gorm.DB) error {
	m := tx.Migrator()
	for _, idx := range legacyIndexes {
		if !m.HasIndex(idx.model, idx.name) {
			continue
		}
		log.Info("Dropping legacy index %s", idx.name)
		if err := m.DropIndex(idx.model, idx.name); err != nil {
			return err
		}
	}
	return nil
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return DB
}
