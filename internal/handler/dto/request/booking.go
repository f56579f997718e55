package request

import (
	"strings"

	"bookit/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ExperienceID  string  `json:"experienceId" binding:"required,uuid"`
	SlotID        string  `json:"slotId" binding:"required,uuid"`
	UserName      string  `json:"userName" binding:"required"`
	UserEmail     string  `json:"userEmail" binding:"required,email"`
	UserPhone     string  `json:"userPhone" binding:"required"`
	Participants  int32   `json:"participants" binding:"required,min=1"`
	PromoCode     *string `json:"promoCode,omitempty"`
	Discount      int64   `json:"discount" binding:"omitempty,min=0"`
	OriginalPrice int64   `json:"originalPrice" binding:"omitempty,min=0"`
	TotalPrice    int64   `json:"totalPrice" binding:"min=0"`
}

func (r *CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	experienceID, err := uuid.Parse(r.ExperienceID)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	slotID, err := uuid.Parse(r.SlotID)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	var promoCode *string
	if r.PromoCode != nil {
		if code := strings.TrimSpace(*r.PromoCode); code != "" {
			promoCode = &code
		}
	}

	return commands.CreateBookingParams{
		ExperienceID:  experienceID,
		SlotID:        slotID,
		UserName:      r.UserName,
		UserEmail:     r.UserEmail,
		UserPhone:     r.UserPhone,
		Participants:  r.Participants,
		PromoCode:     promoCode,
		Discount:      r.Discount,
		OriginalPrice: r.OriginalPrice,
		TotalPrice:    r.TotalPrice,
	}, nil
}
