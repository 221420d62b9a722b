package contract

import (
	"context"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Session() SessionRepo
	Reminder() ReminderRepo
}

// SessionRepo defines the contract for the per-user session repository
type SessionRepo interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Session, error)
	SetDateCursor(ctx context.Context, userID string, date, updatedAt time.Time) error
	ReplaceRecent(ctx context.Context, userID string, recent entity.RecentCanteens, updatedAt time.Time) error
	DeleteIdle(ctx context.Context, before time.Time) (int64, error)
}

// ReminderRepo defines the contract for the reminder subscription repository
type ReminderRepo interface {
	Upsert(ctx context.Context, reminder *entity.Reminder) error
	GetByUserID(ctx context.Context, userID string) (*entity.Reminder, error)
	Delete(ctx context.Context, userID string) error
	GetAll(ctx context.Context) ([]*entity.Reminder, error)
}
