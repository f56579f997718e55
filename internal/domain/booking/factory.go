package booking

import (
	"bookit/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

type CreateParams struct {
	ExperienceID  uuid.UUID
	SlotID        uuid.UUID
	UserName      string
	UserEmail     string
	UserPhone     string
	Participants  int32
	PromoCode     *string
	Discount      int64
	OriginalPrice int64
	TotalPrice    int64
}

func (f *Factory) CreateBooking(params CreateParams) (*Booking, error) {
	customer, err := NewCustomerInfo(params.UserName, params.UserEmail, params.UserPhone)
	if err != nil {
		return nil, err
	}

	pricing, err := NewPricing(params.PromoCode, params.Discount, params.OriginalPrice, params.TotalPrice)
	if err != nil {
		return nil, err
	}

	return NewBooking(
		uuid.New(),
		params.ExperienceID,
		params.SlotID,
		customer,
		params.Participants,
		pricing,
		f.Clock.Now(),
	)
}
