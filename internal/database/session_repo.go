package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

type sessionRepo struct {
	db dbConn
}

func newSessionRepo(db dbConn) contract.SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) GetByUserID(ctx context.Context, userID string) (*entity.Session, error) {
	session := &entity.Session{UserID: userID}
	query := `
		SELECT date_cursor, updated_at
		FROM user_sessions
		WHERE user_id = ?
	`

	var cursor sql.NullString
	var updatedAt int64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&cursor, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.UpdatedAt = time.Unix(updatedAt, 0)
	if cursor.Valid && cursor.String != "" {
		session.DateCursor, err = time.Parse(domain.DateLayout, cursor.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date cursor %q: %w", cursor.String, err)
		}
	}

	session.Recent, err = r.getRecent(ctx, userID)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (r *sessionRepo) getRecent(ctx context.Context, userID string) (entity.RecentCanteens, error) {
	query := `
		SELECT canteen_id, canteen_name
		FROM recent_canteens
		WHERE user_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent canteens: %w", err)
	}
	defer rows.Close()

	var recent entity.RecentCanteens
	for rows.Next() {
		var c entity.RecentCanteen
		if err := rows.Scan(&c.CanteenID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan recent canteen: %w", err)
		}
		recent = append(recent, c)
	}

	return recent, rows.Err()
}

func (r *sessionRepo) SetDateCursor(ctx context.Context, userID string, date, updatedAt time.Time) error {
	query := `
		INSERT INTO user_sessions (user_id, date_cursor, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			date_cursor = excluded.date_cursor,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, userID, date.Format(domain.DateLayout), updatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to set date cursor: %w", err)
	}

	return nil
}

// ReplaceRecent stores recent as the full ordered list of the user
func (r *sessionRepo) ReplaceRecent(ctx context.Context, userID string, recent entity.RecentCanteens, updatedAt time.Time) error {
	touch := `
		INSERT INTO user_sessions (user_id, updated_at)
		VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, touch, userID, updatedAt.Unix()); err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM recent_canteens WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear recent canteens: %w", err)
	}

	insert := `
		INSERT INTO recent_canteens (user_id, position, canteen_id, canteen_name)
		VALUES (?, ?, ?, ?)
	`
	for i, c := range recent {
		if _, err := r.db.ExecContext(ctx, insert, userID, i, c.CanteenID, c.Name); err != nil {
			return fmt.Errorf("failed to insert recent canteen %d: %w", c.CanteenID, err)
		}
	}

	return nil
}

// DeleteIdle removes sessions not updated since before and returns how many were removed
func (r *sessionRepo) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM recent_canteens
		WHERE user_id IN (SELECT user_id FROM user_sessions WHERE updated_at < ?)
	`, before.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete idle recent canteens: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM user_sessions WHERE updated_at < ?`, before.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete idle sessions: %w", err)
	}

	return result.RowsAffected()
}
