package shared

import (
	"context"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/infra/db"
	"bookit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxRetryExhausted marks a transaction that kept hitting retryable
// store-level conflicts (serialization failure, deadlock, lock timeout). The
// whole operation is safe to retry from scratch: nothing was committed.
var ErrTxRetryExhausted = errs.New("transaction failed after max retries")

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Experiences() ExperienceRepository
	Slots() SlotRepository
	Bookings() BookingRepository
	DB() db.DBTX
}

// Minimal snapshots for command-side reads inside a transaction
type ExperienceSnapshot struct {
	ID              uuid.UUID
	Title           string
	Price           int64
	MaxParticipants int32
}

type SlotSnapshot struct {
	ID             uuid.UUID
	ExperienceID   uuid.UUID
	Date           time.Time
	TimeSlot       string
	AvailableSeats int32
	BookedSeats    int32
}

type ExperienceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ExperienceSnapshot, error)
}

type SlotRepository interface {
	// FindByIDForUpdate locks the slot row until the surrounding transaction
	// ends, serializing concurrent writers on the same slot.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	IncrementBookedSeats(ctx context.Context, id uuid.UUID, participants int32) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
}
