//go:build unit || e2e

package builder

import (
	"time"

	dombooking "bookit/internal/domain/booking"
	reqdto "bookit/internal/handler/dto/request"
	"bookit/internal/usecase/queries"
	"bookit/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ExperienceID    uuid.UUID
	ExperienceTitle string
	SlotID          uuid.UUID
	SlotDate        string
	SlotTime        string
	UserName        string
	UserEmail       string
	UserPhone       string
	Participants    int32
	PromoCode       *string
	Discount        int64
	OriginalPrice   int64
	TotalPrice      int64
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ExperienceID:    uuid.New(),
		ExperienceTitle: "Sunset Kayak Tour",
		SlotID:          uuid.New(),
		SlotDate:        "2026-09-15",
		SlotTime:        "10:00",
		UserName:        "Alex Carter",
		UserEmail:       "alex@example.com",
		UserPhone:       "+1-555-0100",
		Participants:    2,
		Discount:        0,
		OriginalPrice:   5000,
		TotalPrice:      5000,
		CreatedAt:       time.Now(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID:  b.ExperienceID.String(),
		SlotID:        b.SlotID.String(),
		UserName:      b.UserName,
		UserEmail:     b.UserEmail,
		UserPhone:     b.UserPhone,
		Participants:  b.Participants,
		PromoCode:     b.PromoCode,
		Discount:      b.Discount,
		OriginalPrice: b.OriginalPrice,
		TotalPrice:    b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildCreateParams() dombooking.CreateParams {
	return dombooking.CreateParams{
		ExperienceID:  b.ExperienceID,
		SlotID:        b.SlotID,
		UserName:      b.UserName,
		UserEmail:     b.UserEmail,
		UserPhone:     b.UserPhone,
		Participants:  b.Participants,
		PromoCode:     b.PromoCode,
		Discount:      b.Discount,
		OriginalPrice: b.OriginalPrice,
		TotalPrice:    b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:              uuid.New(),
		ExperienceID:    b.ExperienceID,
		ExperienceTitle: b.ExperienceTitle,
		SlotID:          b.SlotID,
		SlotDate:        b.SlotDate,
		SlotTime:        b.SlotTime,
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		UserPhone:       b.UserPhone,
		Participants:    b.Participants,
		PromoCode:       b.PromoCode,
		Discount:        b.Discount,
		OriginalPrice:   b.OriginalPrice,
		TotalPrice:      b.TotalPrice,
		Status:          string(dombooking.StatusConfirmed),
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSlotSnapshot(available, booked int32) *shared.SlotSnapshot {
	date, _ := time.Parse("2006-01-02", b.SlotDate)
	return &shared.SlotSnapshot{
		ID:             b.SlotID,
		ExperienceID:   b.ExperienceID,
		Date:           date,
		TimeSlot:       b.SlotTime,
		AvailableSeats: available,
		BookedSeats:    booked,
	}
}

func (b *BookingBuilder) BuildExperienceSnapshot() *shared.ExperienceSnapshot {
	return &shared.ExperienceSnapshot{
		ID:              b.ExperienceID,
		Title:           b.ExperienceTitle,
		Price:           b.OriginalPrice,
		MaxParticipants: 10,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithExperienceID(id uuid.UUID) *BookingBuilder {
	b.ExperienceID = id
	return b
}

func (b *BookingBuilder) WithSlotID(id uuid.UUID) *BookingBuilder {
	b.SlotID = id
	return b
}

func (b *BookingBuilder) WithUserName(name string) *BookingBuilder {
	b.UserName = name
	return b
}

func (b *BookingBuilder) WithUserEmail(email string) *BookingBuilder {
	b.UserEmail = email
	return b
}

func (b *BookingBuilder) WithParticipants(n int32) *BookingBuilder {
	b.Participants = n
	return b
}

func (b *BookingBuilder) WithPromo(code string, discount, originalPrice, totalPrice int64) *BookingBuilder {
	b.PromoCode = &code
	b.Discount = discount
	b.OriginalPrice = originalPrice
	b.TotalPrice = totalPrice
	return b
}
