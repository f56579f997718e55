package response

import (
	"bookit/internal/usecase/queries"
)

type ExperienceResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Price           int64   `json:"price"`
	Duration        string  `json:"duration"`
	MaxParticipants int32   `json:"maxParticipants"`
	ImageURL        *string `json:"imageUrl,omitempty"`
}

type SlotResponse struct {
	ID             string `json:"id"`
	ExperienceID   string `json:"experienceId"`
	Date           string `json:"date"`
	TimeSlot       string `json:"timeSlot"`
	AvailableSeats int32  `json:"availableSeats"`
	BookedSeats    int32  `json:"bookedSeats"`
	RemainingSeats int32  `json:"remainingSeats"`
	IsAvailable    bool   `json:"isAvailable"`
}

type ExperienceDetailResponse struct {
	ExperienceResponse
	Slots []SlotResponse `json:"slots"`
}

type ExperienceListResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func FromExperienceView(v *queries.ExperienceView) ExperienceResponse {
	return ExperienceResponse{
		ID:              v.ID.String(),
		Title:           v.Title,
		Description:     v.Description,
		Location:        v.Location,
		Price:           v.Price,
		Duration:        v.Duration,
		MaxParticipants: v.MaxParticipants,
		ImageURL:        v.ImageURL,
	}
}

func FromExperienceViews(views []*queries.ExperienceView) ExperienceListResponse {
	experiences := make([]ExperienceResponse, 0, len(views))
	for _, v := range views {
		experiences = append(experiences, FromExperienceView(v))
	}
	return ExperienceListResponse{Experiences: experiences}
}

func FromSlotView(v *queries.SlotView) SlotResponse {
	return SlotResponse{
		ID:             v.ID.String(),
		ExperienceID:   v.ExperienceID.String(),
		Date:           v.Date,
		TimeSlot:       v.TimeSlot,
		AvailableSeats: v.AvailableSeats,
		BookedSeats:    v.BookedSeats,
		RemainingSeats: v.RemainingSeats,
		IsAvailable:    v.IsAvailable,
	}
}

func FromSlotViews(views []*queries.SlotView) SlotListResponse {
	slots := make([]SlotResponse, 0, len(views))
	for _, v := range views {
		slots = append(slots, FromSlotView(v))
	}
	return SlotListResponse{Slots: slots}
}

func FromExperienceDetailView(v *queries.ExperienceDetailView) ExperienceDetailResponse {
	return ExperienceDetailResponse{
		ExperienceResponse: FromExperienceView(&v.ExperienceView),
		Slots:              FromSlotViews(v.Slots).Slots,
	}
}
