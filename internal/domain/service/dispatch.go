package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/google/uuid"
)

const (
	reminderPrefix   = "⏰ *Daily reminder*\n\n"
	nextDayLabel     = "➡️ Next Day"
	navigationFailed = "❌ Could not move to the next day, please try again."
)

type dispatcher struct {
	menu      contract.MenuService
	session   contract.SessionService
	messenger contract.Messenger
	loc       *time.Location
	now       func() time.Time
}

func newDispatcher(menu contract.MenuService, session contract.SessionService, messenger contract.Messenger, loc *time.Location, now func() time.Time) *dispatcher {
	return &dispatcher{
		menu:      menu,
		session:   session,
		messenger: messenger,
		loc:       loc,
		now:       now,
	}
}

func (d *dispatcher) today() time.Time {
	return domain.DateOf(d.now(), d.loc)
}

// SelectCanteen shows today's menu of the chosen canteen
func (d *dispatcher) SelectCanteen(ctx context.Context, interaction entity.Interaction, canteenID int64) error {
	return d.RespondInteractive(ctx, interaction, canteenID, d.today())
}

// NextDay advances the user's date cursor and shows that day's menu
func (d *dispatcher) NextDay(ctx context.Context, interaction entity.Interaction, canteenID int64) error {
	date, err := d.session.AdvanceDay(ctx, interaction.UserID)
	if err != nil {
		log.Printf("Failed to advance day for user %s: %v", interaction.UserID, err)
		if replyErr := d.messenger.Reply(ctx, interaction, navigationFailed, nil); replyErr != nil {
			return fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, replyErr)
		}
		return nil
	}

	return d.RespondInteractive(ctx, interaction, canteenID, date)
}

// RespondInteractive renders the menu, records the view and replies to the interaction
func (d *dispatcher) RespondInteractive(ctx context.Context, interaction entity.Interaction, canteenID int64, date time.Time) error {
	requestID := uuid.NewString()
	log.Printf("[%s] Menu request from user %s: canteen %d on %s", requestID, interaction.UserID, canteenID, date.Format(domain.DateLayout))

	text := d.menu.Fetch(ctx, canteenID, date)

	if err := d.session.RecordView(ctx, interaction.UserID, canteenID, date); err != nil {
		// Still deliver the menu
		log.Printf("[%s] Failed to record view: %v", requestID, err)
	}

	if err := d.messenger.Reply(ctx, interaction, text, nextDayActions(canteenID)); err != nil {
		log.Printf("[%s] Failed to reply: %v", requestID, err)
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, err)
	}

	return nil
}

// PushScheduled sends today's menu to userID as an unsolicited reminder
func (d *dispatcher) PushScheduled(ctx context.Context, userID string, canteenID int64) error {
	requestID := uuid.NewString()
	date := d.today()
	log.Printf("[%s] Reminder push to user %s: canteen %d on %s", requestID, userID, canteenID, date.Format(domain.DateLayout))

	text := reminderPrefix + d.menu.Fetch(ctx, canteenID, date)

	if err := d.messenger.Send(ctx, userID, text, nextDayActions(canteenID)); err != nil {
		log.Printf("[%s] Failed to push reminder: %v", requestID, err)
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, err)
	}

	return nil
}

func nextDayActions(canteenID int64) []entity.Action {
	return []entity.Action{
		{
			ActionID: domain.ActionNextDay,
			Label:    nextDayLabel,
			Value:    strconv.FormatInt(canteenID, 10),
		},
	}
}
