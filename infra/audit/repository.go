// Package audit persists message audit records with gorm.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/convobot/pkg/audit"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// model is the gorm mapping for one audit record.
type model struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UserID    int64  `gorm:"index"`
	FirstName string `gorm:"size:128"`
	LastName  string `gorm:"size:128"`
	Username  string `gorm:"size:128"`
	Request   string
	Response  string
}

func (model) TableName() string { return "audit_records" }

// Repository appends audit records to the database.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// New creates a gorm-backed audit repository.
func New(db *gorm.DB, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Migrate creates the audit table if missing.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&model{})
}

// Record implements audit.Recorder.
func (r *Repository) Record(ctx context.Context, rec audit.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	m := model{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		UserID:    rec.UserID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Username:  rec.Username,
		Request:   rec.Request,
		Response:  rec.Response,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.Error("failed to append audit record", "user", rec.UserID, "error", err)
		return err
	}
	return nil
}

var _ audit.Recorder = (*Repository)(nil)
