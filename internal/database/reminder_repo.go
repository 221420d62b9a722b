package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Upsert(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, canteen_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			canteen_id = excluded.canteen_id,
			created_at = excluded.created_at
	`

	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query, reminder.UserID, reminder.CanteenID, reminder.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert reminder: %w", err)
	}

	return nil
}

func (r *reminderRepo) GetByUserID(ctx context.Context, userID string) (*entity.Reminder, error) {
	reminder := &entity.Reminder{}
	query := `
		SELECT user_id, canteen_id, created_at
		FROM reminders
		WHERE user_id = ?
	`

	var createdAt int64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&reminder.UserID,
		&reminder.CanteenID,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	reminder.CreatedAt = time.Unix(createdAt, 0)
	return reminder, nil
}

func (r *reminderRepo) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM reminders WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

func (r *reminderRepo) GetAll(ctx context.Context) ([]*entity.Reminder, error) {
	query := `
		SELECT user_id, canteen_id, created_at
		FROM reminders
		ORDER BY user_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.Reminder
	for rows.Next() {
		reminder := &entity.Reminder{}
		var createdAt int64
		if err := rows.Scan(&reminder.UserID, &reminder.CanteenID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminder.CreatedAt = time.Unix(createdAt, 0)
		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}
