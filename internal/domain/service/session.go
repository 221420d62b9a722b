package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

type sessionService struct {
	dm        contract.DataManager
	directory contract.Directory
	locks     *keyedMutex
	loc       *time.Location
	now       func() time.Time
}

func newSession(dm contract.DataManager, directory contract.Directory, loc *time.Location, now func() time.Time) *sessionService {
	return &sessionService{
		dm:        dm,
		directory: directory,
		locks:     newKeyedMutex(),
		loc:       loc,
		now:       now,
	}
}

// RecordView moves the canteen to the front of the user's recent list and
// sets the date cursor to date.
func (s *sessionService) RecordView(ctx context.Context, userID string, canteenID int64, date time.Time) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	canteen := describeCanteen(s.directory, canteenID)
	now := s.now()

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		session, err := tx.Session().GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		var recent entity.RecentCanteens
		if session != nil {
			recent = session.Recent
		}

		if err := tx.Session().SetDateCursor(ctx, userID, date, now); err != nil {
			return fmt.Errorf("failed to set date cursor: %w", err)
		}

		recent = recent.Touch(entity.RecentCanteen{CanteenID: canteen.ID, Name: canteen.Name}, domain.MaxRecentCanteens)
		if err := tx.Session().ReplaceRecent(ctx, userID, recent, now); err != nil {
			return fmt.Errorf("failed to save recent canteens: %w", err)
		}

		return nil
	})
}

// AdvanceDay moves the user's date cursor one day forward and returns it.
// Users without a cursor start from today.
func (s *sessionService) AdvanceDay(ctx context.Context, userID string) (time.Time, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	var next time.Time
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		session, err := tx.Session().GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		now := s.now()
		cursor := domain.DateOf(now, s.loc)
		if session.HasCursor() {
			c := session.DateCursor
			cursor = time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, s.loc)
		}

		next = cursor.AddDate(0, 0, 1)
		if err := tx.Session().SetDateCursor(ctx, userID, next, now); err != nil {
			return fmt.Errorf("failed to set date cursor: %w", err)
		}

		return nil
	})
	if err != nil {
		return time.Time{}, err
	}

	return next, nil
}

func (s *sessionService) RecentList(ctx context.Context, userID string) (entity.RecentCanteens, error) {
	session, err := s.dm.Session().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session == nil {
		return nil, nil
	}

	return session.Recent, nil
}

// PurgeIdle evicts sessions untouched for longer than ttl
func (s *sessionService) PurgeIdle(ctx context.Context, ttl time.Duration) (int64, error) {
	deleted, err := s.dm.Session().DeleteIdle(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to purge idle sessions: %w", err)
	}

	return deleted, nil
}

// RunJanitor purges idle sessions every interval until ctx is done
func (s *sessionService) RunJanitor(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.PurgeIdle(ctx, ttl)
			if err != nil {
				log.Printf("Session janitor: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("Session janitor evicted %d idle sessions", deleted)
			}
		}
	}
}
