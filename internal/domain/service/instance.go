package service

import (
	"context"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
)

// Options tune the time related behaviour of the services
type Options struct {
	Location     *time.Location
	ReminderTime string
	MisfireGrace time.Duration
	Now          func() time.Time
}

func (o *Options) setDefaults() {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.ReminderTime == "" {
		o.ReminderTime = domain.DefaultReminderTime
	}
	if o.MisfireGrace <= 0 {
		o.MisfireGrace = time.Minute
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

type Instance struct {
	Directory contract.Directory
	Menu      *menuService
	Session   *sessionService
	Dispatch  *dispatcher
	Scheduler *scheduler
}

// NewInstance loads the canteen catalog and wires all services. A catalog
// failure is returned wrapped in domain.ErrCatalogUnavailable.
func NewInstance(ctx context.Context, dm contract.DataManager, menuClient contract.MenuClient, messenger contract.Messenger, opts Options) (*Instance, error) {
	directory, err := LoadDirectory(ctx, menuClient)
	if err != nil {
		return nil, err
	}

	return newInstance(dm, directory, menuClient, messenger, opts)
}

func newInstance(dm contract.DataManager, directory contract.Directory, menuClient contract.MenuClient, messenger contract.Messenger, opts Options) (*Instance, error) {
	opts.setDefaults()

	menu := newMenu(directory, menuClient)
	session := newSession(dm, directory, opts.Location, opts.Now)
	dispatch := newDispatcher(menu, session, messenger, opts.Location, opts.Now)

	scheduler, err := newScheduler(dm, directory, dispatch, opts)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Directory: directory,
		Menu:      menu,
		Session:   session,
		Dispatch:  dispatch,
		Scheduler: scheduler,
	}, nil
}
