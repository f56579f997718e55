package booking

import (
	"errors"
	"time"

	"bookit/internal/domain/experience"

	"github.com/google/uuid"
)

var (
	ErrMissingExperience = errors.New("experience reference is required")
	ErrMissingSlot       = errors.New("slot reference is required")
)

type Status string

// A booking is terminal: it is created confirmed and never transitions.
const StatusConfirmed Status = "confirmed"

// Booking is an immutable record of a successful reservation.
type Booking struct {
	id           uuid.UUID
	experienceID uuid.UUID
	slotID       uuid.UUID
	customer     CustomerInfo
	participants int32
	pricing      Pricing
	status       Status
	createdAt    time.Time
}

func NewBooking(
	id, experienceID, slotID uuid.UUID,
	customer CustomerInfo,
	participants int32,
	pricing Pricing,
	createdAt time.Time,
) (*Booking, error) {
	if experienceID == uuid.Nil {
		return nil, ErrMissingExperience
	}
	if slotID == uuid.Nil {
		return nil, ErrMissingSlot
	}
	if participants < 1 {
		return nil, experience.ErrInvalidParticipants
	}

	return &Booking{
		id:           id,
		experienceID: experienceID,
		slotID:       slotID,
		customer:     customer,
		participants: participants,
		pricing:      pricing,
		status:       StatusConfirmed,
		createdAt:    createdAt,
	}, nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) ExperienceID() uuid.UUID { return b.experienceID }
func (b *Booking) SlotID() uuid.UUID       { return b.slotID }
func (b *Booking) Customer() CustomerInfo  { return b.customer }
func (b *Booking) Participants() int32     { return b.participants }
func (b *Booking) Pricing() Pricing        { return b.pricing }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
