package repository

import (
	"context"

	"bookit/internal/infra"
	"bookit/internal/infra/db"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

const findSlotByIDForUpdate = `
SELECT id, experience_id, date, time_slot, available_seats, booked_seats
FROM slots
WHERE id = $1
FOR UPDATE
`

// FindByIDForUpdate takes the row lock that serializes concurrent bookings
// against the same slot. Lock waits beyond the configured lock_timeout
// surface as a retryable conflict (SQLSTATE 55P03).
func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	var (
		snap shared.SlotSnapshot
		date pgtype.Date
	)
	err := r.db.QueryRow(ctx, findSlotByIDForUpdate, id).Scan(
		&snap.ID,
		&snap.ExperienceID,
		&date,
		&snap.TimeSlot,
		&snap.AvailableSeats,
		&snap.BookedSeats,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot row", err)
	}
	snap.Date = pgconv.DateFromPgtype(date)

	return &snap, nil
}

const incrementBookedSeats = `
UPDATE slots
SET booked_seats = booked_seats + $2, updated_at = now()
WHERE id = $1
`

func (r *SlotRepository) IncrementBookedSeats(ctx context.Context, id uuid.UUID, participants int32) error {
	tag, err := r.db.Exec(ctx, incrementBookedSeats, id, participants)
	if err != nil {
		return infra.WrapRepoErr("failed to increment booked seats", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot disappeared during update", nil, infra.KindNotFound)
	}
	return nil
}
