package response

import (
	"time"

	"bookit/internal/usecase/queries"
)

type BookingResponse struct {
	ID              string  `json:"id"`
	ExperienceID    string  `json:"experienceId"`
	ExperienceTitle string  `json:"experienceTitle"`
	SlotID          string  `json:"slotId"`
	SlotDate        string  `json:"slotDate"`
	SlotTime        string  `json:"slotTime"`
	UserName        string  `json:"userName"`
	UserEmail       string  `json:"userEmail"`
	UserPhone       string  `json:"userPhone"`
	Participants    int32   `json:"participants"`
	PromoCode       *string `json:"promoCode,omitempty"`
	Discount        int64   `json:"discount"`
	OriginalPrice   int64   `json:"originalPrice"`
	TotalPrice      int64   `json:"totalPrice"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:              v.ID.String(),
		ExperienceID:    v.ExperienceID.String(),
		ExperienceTitle: v.ExperienceTitle,
		SlotID:          v.SlotID.String(),
		SlotDate:        v.SlotDate,
		SlotTime:        v.SlotTime,
		UserName:        v.UserName,
		UserEmail:       v.UserEmail,
		UserPhone:       v.UserPhone,
		Participants:    v.Participants,
		PromoCode:       v.PromoCode,
		Discount:        v.Discount,
		OriginalPrice:   v.OriginalPrice,
		TotalPrice:      v.TotalPrice,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
