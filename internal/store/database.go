package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vishal1412/PropScan-sub000/internal/config"
	"github.com/vishal1412/PropScan-sub000/pkg/errors"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 10 * time.Minute
	pingTimeout     = 5 * time.Second
)

// collectionRow holds one collection as a single JSON document. Reads and
// writes move the whole document, keeping the same last-write-wins semantics
// as the file driver.
type collectionRow struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// TableName specifies the table name for collectionRow
func (collectionRow) TableName() string {
	return "collections"
}

// DatabaseStore persists collections in a SQLite or PostgreSQL table,
// selected by DATABASE_URL.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore connects, migrates the collections table and verifies the
// connection with a ping.
func NewDatabaseStore(cfg *config.DatabaseConfig) (*DatabaseStore, error) {
	var dialector gorm.Dialector

	if cfg.IsPostgres() {
		log.Println("[STORE] Connecting to PostgreSQL database...")
		dialector = postgres.Open(cfg.GetPostgresDSN())
	} else {
		log.Println("[STORE] Connecting to SQLite database...")
		dbPath := cfg.GetSQLitePath()
		sqlDB, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        dbPath,
			Conn:       sqlDB,
		}
	}

	// Silent logger: collection documents may carry lead contact details,
	// which must not end up in SQL logs.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.IsPostgres() {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
		sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
	}

	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate collections table: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	log.Println("[STORE] Database connected and migrated successfully")
	return &DatabaseStore{db: db}, nil
}

// Read returns the collection document, or (nil, nil) if the row is missing.
func (s *DatabaseStore) Read(ctx context.Context, collection string) ([]byte, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", collection).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("reading collection %s", collection), err)
	}
	return row.Data, nil
}

// Write upserts the full collection document.
func (s *DatabaseStore) Write(ctx context.Context, collection string, data []byte) error {
	row := collectionRow{Name: collection, Data: data, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("writing collection %s", collection), err)
	}
	return nil
}

func (s *DatabaseStore) ReadOnly() bool { return false }

// Close closes the underlying database connection.
func (s *DatabaseStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
