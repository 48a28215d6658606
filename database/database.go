package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reviews/config"
	"reviews/models"
)

// ErrStorage marks every failure that comes from the datastore.
var ErrStorage = errors.New("storage error")

// Store persists reviews in a single table
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to the configured datastore and initializes the schema
func Open(cfg *config.Config, log *zap.Logger) (*Store, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if cfg.LogLevel == "debug" {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(sqliteDSN(cfg.DBName))
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, wrap("open database", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, wrap("get database instance", err)
	}
	if cfg.DBDriver == "postgres" {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	} else {
		// one writer at a time; sqlite serializes anyway
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(0)

	store := &Store{db: db, log: log}
	if err := store.Init(context.Background()); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Info("database ready", zap.String("driver", cfg.DBDriver))
	return store, nil
}

// Init creates the reviews table when it does not exist yet. Existing tables
// are never altered, so it is safe to call on every startup.
func (s *Store) Init(ctx context.Context) error {
	m := s.db.WithContext(ctx).Migrator()
	if m.HasTable(&models.Review{}) {
		return nil
	}

	if err := m.CreateTable(&models.Review{}); err != nil {
		return wrap("create reviews table", err)
	}
	s.log.Info("reviews table created")
	return nil
}

// Insert stores one review and returns its id
func (s *Store) Insert(ctx context.Context, text string, sentiment models.Sentiment, createdAt string) (uint, error) {
	review := models.Review{
		Text:      text,
		Sentiment: sentiment,
		CreatedAt: createdAt,
	}

	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return 0, wrap("insert review", err)
	}
	return review.ID, nil
}

// List returns reviews in insertion order. An empty filter returns all of
// them, otherwise only those whose sentiment equals filter exactly.
func (s *Store) List(ctx context.Context, filter string) ([]models.Review, error) {
	query := s.db.WithContext(ctx).Model(&models.Review{})
	if filter != "" {
		query = query.Where("sentiment = ?", filter)
	}

	reviews := make([]models.Review, 0)
	if err := query.Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, wrap("list reviews", err)
	}
	return reviews, nil
}

// Ping checks that the datastore is reachable
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrap("get database instance", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return wrap("ping", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrap("get database instance", err)
	}
	return sqlDB.Close()
}

// sqliteDSN appends the WAL and busy timeout pragmas to name, which may
// already carry its own query string.
func sqliteDSN(name string) string {
	sep := "?"
	if strings.Contains(name, "?") {
		sep = "&"
	}
	return name + sep + "_journal_mode=WAL&_busy_timeout=5000"
}

func wrap(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
