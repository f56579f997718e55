package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ExperienceView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Price           int64     `json:"price"`
	Duration        string    `json:"duration"`
	MaxParticipants int32     `json:"max_participants"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ExperienceDetailView struct {
	ExperienceView
	Slots []*SlotView `json:"slots"`
}

type SlotView struct {
	ID             uuid.UUID `json:"id"`
	ExperienceID   uuid.UUID `json:"experience_id"`
	Date           string    `json:"date"`
	TimeSlot       string    `json:"time_slot"`
	AvailableSeats int32     `json:"available_seats"`
	BookedSeats    int32     `json:"booked_seats"`
	RemainingSeats int32     `json:"remaining_seats"`
	IsAvailable    bool      `json:"is_available"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	ExperienceID    uuid.UUID `json:"experience_id"`
	ExperienceTitle string    `json:"experience_title"`
	SlotID          uuid.UUID `json:"slot_id"`
	SlotDate        string    `json:"slot_date"`
	SlotTime        string    `json:"slot_time"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	UserPhone       string    `json:"user_phone"`
	Participants    int32     `json:"participants"`
	PromoCode       *string   `json:"promo_code,omitempty"`
	Discount        int64     `json:"discount"`
	OriginalPrice   int64     `json:"original_price"`
	TotalPrice      int64     `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// SlotDateFormat is the wire format for slot dates.
const SlotDateFormat = "2006-01-02"
