package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tally/internal/domain"
	"tally/internal/logging"
	"tally/internal/ports"
)

// SQLiteRepository implements ports.TaskCacheRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.TaskCacheRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the tally logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TALLY_DEBUG") == "1" || os.Getenv("TALLY_DEBUG") == "true" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the cache database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	if err := db.AutoMigrate(&TaskModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate task cache schema: %w", err)
	}

	logging.Logger.Debug("Task cache opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// ListTasks returns the cached tasks in catalog order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var models []TaskModel
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list cached tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(models))
	for _, m := range models {
		tasks = append(tasks, taskModelToDomain(m))
	}
	return tasks, nil
}

// ReplaceTasks swaps the whole cached catalog for tasks in one transaction
func (r *SQLiteRepository) ReplaceTasks(ctx context.Context, tasks []domain.Task) error {
	cachedAt := time.Now().UTC()

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&TaskModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear cached tasks: %w", err)
			}
			if len(tasks) == 0 {
				return nil
			}

			models := make([]TaskModel, 0, len(tasks))
			seen := make(map[string]bool, len(tasks))
			for i, t := range tasks {
				key := t.ProjectID + " " + t.TaskID
				if seen[key] {
					continue
				}
				seen[key] = true
				models = append(models, domainToTaskModel(t, i, cachedAt))
			}
			if err := tx.CreateInBatches(models, 100).Error; err != nil {
				return fmt.Errorf("failed to cache tasks: %w", err)
			}
			return nil
		})
	}, 3)
}

// ClearTasks removes every cached task
func (r *SQLiteRepository) ClearTasks(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&TaskModel{}).Error
	}, 3)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Warn("Task cache busy, retrying", "attempt", i+1, "error", err)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
