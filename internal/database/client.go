// Package database stores computed band fractions in a local SQLite
// database so successive runs can be compared.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bandfrac/internal/log"
	"go.uber.org/zap"
)

// Client holds the connection to the run-history database
type Client struct {
	path   string
	DB     *gorm.DB
	logger *zap.SugaredLogger
}

// NewClient creates a new database client
func NewClient(path string, logger *zap.SugaredLogger) *Client {
	return &Client{
		path:   path,
		logger: logger,
	}
}

// Connect opens the SQLite database, creating the file if necessary
func (c *Client) Connect() error {
	var err error

	// Create a logger for gorm
	dbLogger := logger.New(
		zap.NewStdLog(log.GetZapLogger()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  false,
		},
	)

	config := &gorm.Config{
		Logger: dbLogger,
	}

	c.DB, err = gorm.Open(sqlite.Open(c.path), config)
	if err != nil {
		return fmt.Errorf("opening run-history database %s: %w", c.path, err)
	}
	log.Debugf("run-history database %s opened", c.path)

	return nil
}

// CreateTables migrates the schema for the run-history tables
func (c *Client) CreateTables() error {
	if err := c.DB.AutoMigrate(&BandFractionRecord{}); err != nil {
		return fmt.Errorf("migrating run-history schema: %w", err)
	}
	return nil
}

// SaveResults inserts the records from one run in a single transaction
func (c *Client) SaveResults(records []BandFractionRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := c.DB.Create(&records).Error; err != nil {
		return fmt.Errorf("saving %d band fractions: %w", len(records), err)
	}
	return nil
}

// Close closes the underlying database connection
func (c *Client) Close() error {
	if c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
