package commands

import (
	"context"
	"errors"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/experience"
	"bookit/internal/infra"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/queries"
	"bookit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrExperienceNotFound      = errs.New("experience not found")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrDomainValidation        = errs.New("booking validation failed")
	ErrTransientConflict       = errs.New("booking conflicted with a concurrent request")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams = booking.CreateParams

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
	}
}

// CreateBooking runs the reservation transaction: existence checks, the
// capacity check against the locked slot row, the seat increment and the
// booking insert commit together or not at all. Concurrent requests for the
// same slot serialize on the row lock; the loser re-evaluates capacity
// against the updated counter.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	entity, err := c.factory.CreateBooking(params)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Experiences().FindByID(ctx, entity.ExperienceID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrExperienceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slotSnap, err := tx.Slots().FindByIDForUpdate(ctx, entity.SlotID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slot := experience.ReconstructSlot(
			slotSnap.ID,
			slotSnap.ExperienceID,
			slotSnap.Date,
			slotSnap.TimeSlot,
			slotSnap.AvailableSeats,
			slotSnap.BookedSeats,
		)
		if err := slot.Reserve(entity.Participants()); err != nil {
			return err
		}

		if err := tx.Slots().IncrementBookedSeats(ctx, slotSnap.ID, entity.Participants()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		id, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, shared.ErrTxRetryExhausted) {
			return nil, errs.Mark(err, ErrTransientConflict)
		}
		return nil, err
	}

	// Read-after-write: return the complete view including catalog context
	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
