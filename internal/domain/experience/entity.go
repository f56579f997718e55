package experience

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errors.New("experience title cannot be empty")
	ErrNegativePrice       = errors.New("experience price cannot be negative")
	ErrInvalidCapacity     = errors.New("slot capacity must be positive")
	ErrSeatsOutOfRange     = errors.New("booked seats cannot exceed available seats")
	ErrInvalidParticipants = errors.New("participants must be at least 1")
)

const MaxTitleLength = 255

type Experience struct {
	id              uuid.UUID
	title           string
	price           int64
	maxParticipants int32
	createdAt       time.Time
	updatedAt       time.Time
}

func NewExperience(id uuid.UUID, title string, price int64, maxParticipants int32) (*Experience, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > MaxTitleLength {
		return nil, ErrEmptyTitle
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Experience{
		id:              id,
		title:           title,
		price:           price,
		maxParticipants: maxParticipants,
	}, nil
}

func (e *Experience) ID() uuid.UUID          { return e.id }
func (e *Experience) Title() string          { return e.title }
func (e *Experience) Price() int64           { return e.price }
func (e *Experience) MaxParticipants() int32 { return e.maxParticipants }
func (e *Experience) CreatedAt() time.Time   { return e.createdAt }
func (e *Experience) UpdatedAt() time.Time   { return e.updatedAt }

// InsufficientSeatsError reports how many seats were actually left so the
// caller can offer a corrected quantity.
type InsufficientSeatsError struct {
	Remaining int32
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("only %d seats available", e.Remaining)
}

// Slot is a dated, time-boxed instance of an Experience with fixed capacity.
// Invariant: 0 <= bookedSeats <= availableSeats.
type Slot struct {
	id             uuid.UUID
	experienceID   uuid.UUID
	date           time.Time
	timeSlot       string
	availableSeats int32
	bookedSeats    int32
}

func NewSlot(id, experienceID uuid.UUID, date time.Time, timeSlot string, availableSeats, bookedSeats int32) (*Slot, error) {
	if availableSeats <= 0 {
		return nil, ErrInvalidCapacity
	}
	if bookedSeats < 0 || bookedSeats > availableSeats {
		return nil, ErrSeatsOutOfRange
	}

	return &Slot{
		id:             id,
		experienceID:   experienceID,
		date:           date,
		timeSlot:       timeSlot,
		availableSeats: availableSeats,
		bookedSeats:    bookedSeats,
	}, nil
}

// ReconstructSlot rebuilds a slot from stored state without validation.
func ReconstructSlot(id, experienceID uuid.UUID, date time.Time, timeSlot string, availableSeats, bookedSeats int32) *Slot {
	return &Slot{
		id:             id,
		experienceID:   experienceID,
		date:           date,
		timeSlot:       timeSlot,
		availableSeats: availableSeats,
		bookedSeats:    bookedSeats,
	}
}

func (s *Slot) RemainingSeats() int32 {
	return s.availableSeats - s.bookedSeats
}

func (s *Slot) IsAvailable() bool {
	return s.bookedSeats < s.availableSeats
}

// Reserve claims participants seats against the remaining capacity. The
// caller must hold the slot's row lock for the check-then-increment to be
// meaningful under concurrency.
func (s *Slot) Reserve(participants int32) error {
	if participants < 1 {
		return ErrInvalidParticipants
	}
	if remaining := s.RemainingSeats(); participants > remaining {
		return &InsufficientSeatsError{Remaining: remaining}
	}
	s.bookedSeats += participants
	return nil
}

func (s *Slot) ID() uuid.UUID           { return s.id }
func (s *Slot) ExperienceID() uuid.UUID { return s.experienceID }
func (s *Slot) Date() time.Time         { return s.date }
func (s *Slot) TimeSlot() string        { return s.timeSlot }
func (s *Slot) AvailableSeats() int32   { return s.availableSeats }
func (s *Slot) BookedSeats() int32      { return s.bookedSeats }
