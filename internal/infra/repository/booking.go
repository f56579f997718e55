package repository

import (
	"context"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"
	"bookit/internal/infra/db"
	"bookit/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const createBooking = `
INSERT INTO bookings (
	id, experience_id, slot_id,
	user_name, user_email, user_phone,
	participants, promo_code, discount, original_price, total_price,
	status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	pricing := b.Pricing()
	customer := b.Customer()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createBooking,
		b.ID(),
		b.ExperienceID(),
		b.SlotID(),
		customer.Name(),
		customer.Email(),
		customer.Phone(),
		b.Participants(),
		pgconv.StringPtrToPgtype(pricing.PromoCode()),
		pricing.Discount(),
		pricing.OriginalPrice(),
		pricing.TotalPrice(),
		string(b.Status()),
		pgconv.TimeToPgtype(b.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}
