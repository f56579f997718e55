package readstore

import (
	"context"

	"bookit/internal/infra"
	"bookit/internal/infra/db"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingByID = `
SELECT
	b.id, b.experience_id, e.title, b.slot_id, s.date, s.time_slot,
	b.user_name, b.user_email, b.user_phone, b.participants,
	b.promo_code, b.discount, b.original_price, b.total_price,
	b.status, b.created_at
FROM bookings b
JOIN experiences e ON e.id = b.experience_id
JOIN slots s ON s.id = b.slot_id
WHERE b.id = $1
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		slotDate  pgtype.Date
		promoCode pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingByID, id).Scan(
		&view.ID,
		&view.ExperienceID,
		&view.ExperienceTitle,
		&view.SlotID,
		&slotDate,
		&view.SlotTime,
		&view.UserName,
		&view.UserEmail,
		&view.UserPhone,
		&view.Participants,
		&promoCode,
		&view.Discount,
		&view.OriginalPrice,
		&view.TotalPrice,
		&view.Status,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.SlotDate = pgconv.DateFromPgtype(slotDate).Format(queries.SlotDateFormat)
	view.PromoCode = pgconv.StringPtrFromPgtype(promoCode)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
