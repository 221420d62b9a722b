package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

// idleWait is how long the main loop sleeps when no reminder is active
const idleWait = time.Hour

// job is the live trigger of one user's reminder subscription
type job struct {
	userID    string
	canteenID int64
	nextRun   time.Time
}

type scheduler struct {
	dm           contract.DataManager
	directory    contract.Directory
	dispatcher   contract.Dispatcher
	loc          *time.Location
	hour         int
	minute       int
	activeDays   map[int]bool
	misfireGrace time.Duration
	now          func() time.Time

	// userLocks is held per user by Set, Clear and the whole push of a
	// claimed job, so a push never outlives the replace or cancel of its job.
	userLocks *keyedMutex

	// mu guards jobs and running. Set, Clear and the firing claim all hold it,
	// so a replaced or cleared job cannot be claimed once they return.
	mu            sync.Mutex
	jobs          map[string]*job
	running       bool
	stopped       bool
	configChanged chan struct{}
	stopChan      chan struct{}
	inflight      sync.WaitGroup
}

func newScheduler(dm contract.DataManager, directory contract.Directory, dispatcher contract.Dispatcher, opts Options) (*scheduler, error) {
	hour, minute, err := parseReminderTime(opts.ReminderTime)
	if err != nil {
		return nil, err
	}

	activeDays := make(map[int]bool)
	for _, day := range domain.DefaultActiveDays {
		activeDays[day] = true
	}

	return &scheduler{
		dm:            dm,
		directory:     directory,
		dispatcher:    dispatcher,
		loc:           opts.Location,
		hour:          hour,
		minute:        minute,
		activeDays:    activeDays,
		misfireGrace:  opts.MisfireGrace,
		now:           opts.Now,
		userLocks:     newKeyedMutex(),
		jobs:          make(map[string]*job),
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
	}, nil
}

func parseReminderTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidReminderTime, value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: invalid hour in %q", domain.ErrInvalidReminderTime, value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: invalid minute in %q", domain.ErrInvalidReminderTime, value)
	}

	return hour, minute, nil
}

// Set registers the daily reminder of userID for canteenID, replacing any
// previous one. Unknown canteens are rejected and leave the old reminder in place.
func (s *scheduler) Set(ctx context.Context, userID string, canteenID int64) (entity.Canteen, error) {
	canteen, ok := s.directory.ByID(canteenID)
	if !ok {
		return entity.Canteen{}, fmt.Errorf("%w: %d", domain.ErrUnknownCanteen, canteenID)
	}

	unlock := s.userLocks.Lock(userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	reminder := &entity.Reminder{
		UserID:    userID,
		CanteenID: canteenID,
		CreatedAt: s.now(),
	}
	if err := s.dm.Reminder().Upsert(ctx, reminder); err != nil {
		return entity.Canteen{}, fmt.Errorf("failed to save reminder: %w", err)
	}

	s.armLocked(userID, canteenID)
	log.Printf("Reminder set for user %s, canteen %d, next run %s", userID, canteenID, s.jobs[userID].nextRun.Format(time.RFC3339))

	return canteen, nil
}

// Clear removes the reminder of userID. Clearing an unset reminder is a no-op.
func (s *scheduler) Clear(ctx context.Context, userID string) error {
	unlock := s.userLocks.Lock(userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop the live job first so it stays cancelled even if the store fails
	_, existed := s.jobs[userID]
	delete(s.jobs, userID)

	if err := s.dm.Reminder().Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	if existed {
		log.Printf("Reminder cleared for user %s", userID)
		s.NotifyConfigChange()
	}

	return nil
}

// Restore arms a job for every subscription found in the store
func (s *scheduler) Restore(ctx context.Context) error {
	reminders, err := s.dm.Reminder().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range reminders {
		if _, ok := s.directory.ByID(r.CanteenID); !ok {
			log.Printf("Skipping reminder of user %s: canteen %d no longer exists", r.UserID, r.CanteenID)
			continue
		}
		s.armLocked(r.UserID, r.CanteenID)
	}

	if len(reminders) > 0 {
		log.Printf("Restored %d reminders", len(s.jobs))
	}
	return nil
}

// armLocked replaces the job of userID. Callers must hold s.mu.
func (s *scheduler) armLocked(userID string, canteenID int64) {
	s.jobs[userID] = &job{
		userID:    userID,
		canteenID: canteenID,
		nextRun:   s.calculateNextRun(s.now()),
	}
	s.NotifyConfigChange()
}

// Active reports the canteen of userID's live reminder
func (s *scheduler) Active(userID string) (canteenID int64, nextRun time.Time, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[userID]
	if !ok {
		return 0, time.Time{}, false
	}
	return j.canteenID, j.nextRun, true
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

// Stop ends the main loop and waits for pushes already in flight
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
	s.stopped = true
	s.mu.Unlock()

	s.inflight.Wait()
}

func (s *scheduler) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case s.configChanged <- struct{}{}:
	default:
		// Channel is full, scheduler will recalculate anyway
	}
}

func (s *scheduler) mainLoop() {
	for {
		nextTime, count := s.findNextRun()

		wait := idleWait
		if count == 0 {
			log.Println("No active reminders, waiting for changes...")
		} else {
			log.Printf("Next reminder at %s for %d users", nextTime.Format(time.RFC3339), count)
			wait = nextTime.Sub(s.now())
			if wait < 0 {
				wait = 0
			}
		}

		timer := time.NewTimer(wait)

		select {
		case <-timer.C:
			s.fireDue(s.now())

		case <-s.configChanged:
			// Configuration changed, recalculate
			timer.Stop()
			continue

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// findNextRun returns the earliest next run and how many jobs share it
func (s *scheduler) findNextRun() (time.Time, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.jobs) == 0 {
		return time.Time{}, 0
	}

	runs := make([]time.Time, 0, len(s.jobs))
	for _, j := range s.jobs {
		runs = append(runs, j.nextRun)
	}

	// Sort by time
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Before(runs[j])
	})

	count := 0
	for _, r := range runs {
		if !r.Equal(runs[0]) {
			break // Since it's sorted, we can break early
		}
		count++
	}

	return runs[0], count
}

// fireDue claims every job due at now, advances it to its next run and
// dispatches the claimed ones. Jobs later than the misfire grace are skipped.
func (s *scheduler) fireDue(now time.Time) int {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return 0
	}

	var due []*job
	for _, j := range s.jobs {
		if j.nextRun.After(now) {
			continue
		}

		scheduled := j.nextRun
		j.nextRun = s.calculateNextRun(now)

		if now.Sub(scheduled) > s.misfireGrace {
			log.Printf("Skipping missed reminder for user %s scheduled at %s", j.userID, scheduled.Format(time.RFC3339))
			continue
		}
		due = append(due, j)
	}
	s.inflight.Add(len(due))
	s.mu.Unlock()

	if len(due) > 0 {
		log.Printf("Sending reminders to %d users", len(due))
	}

	for _, j := range due {
		go func(j *job) {
			defer s.inflight.Done()
			s.push(context.Background(), j)
		}(j)
	}

	return len(due)
}

// push delivers a claimed job unless it was replaced or cleared after the
// claim. It holds the user's lock for the whole delivery.
func (s *scheduler) push(ctx context.Context, claimed *job) bool {
	unlock := s.userLocks.Lock(claimed.userID)
	defer unlock()

	s.mu.Lock()
	current := s.jobs[claimed.userID]
	s.mu.Unlock()

	if current != claimed {
		log.Printf("Dropping reminder of user %s: it was changed after being claimed", claimed.userID)
		return false
	}

	if err := s.dispatcher.PushScheduled(ctx, claimed.userID, claimed.canteenID); err != nil {
		log.Printf("Failed to push reminder to user %s: %v", claimed.userID, err)
	}
	return true
}

// calculateNextRun returns the first reminder time strictly after now
// falling on an active weekday in the scheduler's timezone.
func (s *scheduler) calculateNextRun(now time.Time) time.Time {
	local := now.In(s.loc)

	// Try today first
	today := time.Date(local.Year(), local.Month(), local.Day(), s.hour, s.minute, 0, 0, s.loc)
	if s.activeDays[domain.ISOWeekday(today)] && today.After(local) {
		return today
	}

	// Find next active day
	for i := 1; i <= 7; i++ {
		next := time.Date(local.Year(), local.Month(), local.Day()+i, s.hour, s.minute, 0, 0, s.loc)
		if s.activeDays[domain.ISOWeekday(next)] {
			return next
		}
	}

	// Unreachable while at least one day is active
	log.Printf("Could not find next reminder time after %s", now.Format(time.RFC3339))
	return time.Time{}
}
